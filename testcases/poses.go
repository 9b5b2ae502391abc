// seehuhn.de/go/menuicon - a morphing three-bar menu icon
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package testcases

import (
	"fmt"
	"strings"

	"seehuhn.de/go/menuicon"
)

// restCases shows every shape in every pose where it is at rest.
var restCases = func() []TestCase {
	var res []TestCase
	for _, p := range menuicon.Pairs {
		res = append(res,
			TestCase{Name: poseName(p, 0), Pair: p, Progress: 0, Weight: menuicon.WeightThin},
			TestCase{Name: poseName(p, 1), Pair: p, Progress: 1, Weight: menuicon.WeightThin},
			TestCase{Name: poseName(p, 2), Pair: p, Progress: 2, Weight: menuicon.WeightThin},
		)
	}
	return res
}()

// sweepCases samples both laps of every pair.
var sweepCases = func() []TestCase {
	steps := []float64{0.25, 0.5, 0.75, 1.25, 1.5, 1.75}
	var res []TestCase
	for _, p := range menuicon.Pairs {
		for _, progress := range steps {
			res = append(res, TestCase{
				Name:     poseName(p, progress),
				Pair:     p,
				Progress: progress,
				Weight:   menuicon.WeightThin,
			})
		}
	}
	return res
}()

var weightCases = []TestCase{
	{Name: "regular_burger", Pair: menuicon.BurgerArrow, Progress: 0, Weight: menuicon.WeightRegular},
	{Name: "regular_arrow", Pair: menuicon.BurgerArrow, Progress: 1, Weight: menuicon.WeightRegular},
	{Name: "regular_burger_x", Pair: menuicon.BurgerX, Progress: 0.5, Weight: menuicon.WeightRegular},
	{Name: "regular_check", Pair: menuicon.XCheck, Progress: 1, Weight: menuicon.WeightRegular},
	{Name: "extra_thin_burger", Pair: menuicon.BurgerArrow, Progress: 0, Weight: menuicon.WeightExtraThin},
	{Name: "extra_thin_arrow_x", Pair: menuicon.ArrowX, Progress: 0.5, Weight: menuicon.WeightExtraThin},
	{Name: "extra_thin_x", Pair: menuicon.ArrowX, Progress: 1, Weight: menuicon.WeightExtraThin},
	{Name: "extra_thin_check", Pair: menuicon.BurgerCheck, Progress: 1, Weight: menuicon.WeightExtraThin},
}

var sizeCases = []TestCase{
	{Name: "density_1_5_burger", Pair: menuicon.BurgerArrow, Weight: menuicon.WeightThin, Density: 1.5},
	{Name: "density_1_5_x", Pair: menuicon.BurgerX, Progress: 1, Weight: menuicon.WeightThin, Density: 1.5},
	{Name: "density_2_arrow", Pair: menuicon.BurgerArrow, Progress: 1, Weight: menuicon.WeightThin, Density: 2},
	{Name: "density_3_check", Pair: menuicon.ArrowCheck, Progress: 1, Weight: menuicon.WeightRegular, Density: 3},
	{Name: "scale_2_burger_check", Pair: menuicon.BurgerCheck, Progress: 0.6, Weight: menuicon.WeightThin, Scale: 2},
}

var rtlCases = []TestCase{
	{Name: "arrow", Pair: menuicon.BurgerArrow, Progress: 1, Weight: menuicon.WeightThin, RTL: true},
	{Name: "burger_arrow_mid", Pair: menuicon.BurgerArrow, Progress: 0.5, Weight: menuicon.WeightThin, RTL: true},
	{Name: "check", Pair: menuicon.XCheck, Progress: 1, Weight: menuicon.WeightThin, RTL: true},
	{Name: "arrow_check_mid", Pair: menuicon.ArrowCheck, Progress: 1.5, Weight: menuicon.WeightThin, RTL: true},
}

// accentCases shows the accent growing while the icon turns into an arrow.
var accentCases = func() []TestCase {
	m := menuicon.NewMetrics(menuicon.WeightThin, 1, 1)
	maxR := m.MaxAccentRadius()
	var res []TestCase
	for i := 1; i <= 5; i++ {
		t := float64(i) / 5
		res = append(res, TestCase{
			Name:     fmt.Sprintf("step_%d", i),
			Pair:     menuicon.BurgerArrow,
			Progress: t,
			Weight:   menuicon.WeightThin,
			Accent:   t * maxR,
		})
	}
	return res
}()

// poseName returns a name like "burger_x_1_25".
func poseName(p menuicon.Pair, progress float64) string {
	name := fmt.Sprintf("%s_%g", strings.ToLower(p.String()), progress)
	return strings.ReplaceAll(name, ".", "_")
}

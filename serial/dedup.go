// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package serial

import "cogentcore.org/editkit/value"

// RemoveDuplicates removes every element equal to an earlier element
// of the array, in one transaction, keeping the order of the rest.
// It returns the number of elements removed.
func RemoveDuplicates(a *Array) (int, error) {
	removed := 0
	err := a.Apply(func() error {
		vs, err := a.Values()
		if err != nil {
			return err
		}
		dups := duplicates(vs)
		for k := len(dups) - 1; k >= 0; k-- {
			if err := a.RemoveAt(dups[k]); err != nil {
				return err
			}
			removed++
		}
		return nil
	})
	return removed, err
}

// duplicates returns the ascending indexes of the values
// equal to an earlier kept value.
func duplicates(vs []any) []int {
	var dups []int
	dup := make([]bool, len(vs))
	for j := 1; j < len(vs); j++ {
		for i := range j {
			if !dup[i] && value.Equal(vs[i], vs[j]) {
				dup[j] = true
				dups = append(dups, j)
				break
			}
		}
	}
	return dups
}

// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package im2row_test

import (
	"fmt"

	"github.com/born-ml/im2row/im2row"
)

func ExampleStack() {
	shape := im2row.Volume{Width: 3, Height: 3, Depth: 1}
	data := []float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}

	stacked, layout, err := im2row.Stack(data, shape, im2row.Uniform(2, 1, 0, 1))
	if err != nil {
		panic(err)
	}

	np := layout.NumPatches()
	for row := 0; row < layout.NumRows; row++ {
		fmt.Println(stacked[row*np : (row+1)*np])
	}
	// Output:
	// [1 2 4 5]
	// [2 3 5 6]
	// [4 5 7 8]
	// [5 6 8 9]
}

func ExampleUnstack() {
	shape := im2row.Volume{Width: 3, Height: 3, Depth: 1}
	g := im2row.Uniform(2, 1, 0, 1)

	ones := make([]float64, 16)
	for i := range ones {
		ones[i] = 1
	}

	counts, err := im2row.Unstack(ones, shape, g)
	if err != nil {
		panic(err)
	}
	fmt.Println(counts)
	// Output: [1 2 1 2 4 2 1 2 1]
}

// SPDX-License-Identifier: EPL-2.0

package qpsk_test

import (
	"fmt"
	"slices"

	"github.com/ik5/audboot/qpsk"
)

func ExampleModulator_Modulate() {
	mod, err := qpsk.NewModulator(qpsk.Config{SampleRate: 48000, SymbolRate: 6000})
	if err != nil {
		fmt.Println(err)
		return
	}

	signal := mod.Modulate(slices.Values([]qpsk.Symbol{3, qpsk.Blank}))
	fmt.Println(mod.SamplesPerSymbol(), mod.Duration(2))
	fmt.Println(signal[:8])
	fmt.Println(signal[8:])
	// Output:
	// 8 333.333µs
	// [23170 0 -23170 -32767 -23170 0 23170 32767]
	// [0 0 0 0 0 0 0 0]
}

package oneknob_test

import (
	"fmt"

	"github.com/cwbudde/oneknob/dsp/effects/oneknob"
)

func ExampleProcessor() {
	p, err := oneknob.NewProcessor(48000)
	if err != nil {
		panic(err)
	}

	p.SetAmountPercent(-40)
	fmt.Println(oneknob.FormatAmount(p.AmountPercent()))

	left := make([]float32, 256)
	right := make([]float32, 256)
	p.ProcessBlock([][]float32{left, right})

	fmt.Println(oneknob.SupportsLayout(2, 2))

	// Output:
	// EXPAND 40%
	// true
}

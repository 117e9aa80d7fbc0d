package classify_test

import (
	"fmt"

	"github.com/keebtools/via2qmk/pkg/classify"
	"github.com/keebtools/via2qmk/pkg/via"
)

func ExampleDetectKeys() {
	// A 1.25u key at the start of the shift row is the ISO tell.
	keys := []via.Key{
		{Kind: via.KindGeometry, Label: "0,0", Width: 1},
		{Kind: via.KindGeometry, Label: "3,0", Width: 1.25, Y: 3},
	}

	fmt.Println(classify.DetectKeys(keys))
	// Output: LAYOUT_60_iso
}

func ExampleAnalyze() {
	keys := []via.Key{
		{Kind: via.KindGeometry, Label: "0,0", Width: 2},
		via.Labeled("0,1"),
	}

	props := classify.Analyze(keys)
	fmt.Println(props.TotalKeys, props.KeyWidths)
	// Output: 2 [2 1]
}

package format

import (
	"os"

	"github.com/francoispqt/gojay"
	"github.com/qkdcore/ldpc4qkd/matrix"
)

// binCSCJSONFormat is the only "format" value this reader accepts;
// quasi-cyclic variants are rejected here.
const binCSCJSONFormat = "BINCSCJSON"

// intSlice decodes a JSON array of non-negative integers via gojay's
// streaming array decoder, avoiding an intermediate []interface{}.
type intSlice []int

func (s *intSlice) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var v int
	if err := dec.Int(&v); err != nil {
		return err
	}
	*s = append(*s, v)
	return nil
}

// binCSCJSON is the wire shape of a "bincsc.json" document: a "format"
// discriminator plus "colptr"/"rowval" integer arrays.
type binCSCJSON struct {
	Format string
	ColPtr intSlice
	RowVal intSlice
}

func (b *binCSCJSON) NKeys() int { return 3 }

func (b *binCSCJSON) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "format":
		return dec.String(&b.Format)
	case "colptr":
		return dec.Array(&b.ColPtr)
	case "rowval":
		return dec.Array(&b.RowVal)
	}
	return nil
}

// ReadBinCSCJSON loads the mother matrix from the "bincsc.json" layout.
func ReadBinCSCJSON(path string) (*matrix.MotherMatrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, parseErrorf(path, "open: %v", err)
	}

	var doc binCSCJSON
	if err := gojay.UnmarshalJSONObject(data, &doc); err != nil {
		return nil, parseErrorf(path, "decode: %v", err)
	}
	if doc.Format != binCSCJSONFormat {
		return nil, parseErrorf(path, "unsupported format %q (want %q)", doc.Format, binCSCJSONFormat)
	}

	mm, err := matrix.NewMotherMatrixFromCSC([]int(doc.ColPtr), []int(doc.RowVal))
	if err != nil {
		return nil, parseErrorf(path, "invalid CSC: %v", err)
	}
	return mm, nil
}

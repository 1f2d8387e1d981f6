package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
)

// Format selects the STL encoding used by Save
type Format int

const (
	// FormatBinary is the compact little-endian encoding
	FormatBinary Format = iota
	// FormatASCII is the human readable "solid ... endsolid" encoding
	FormatASCII
)

func (f Format) String() string {
	if f == FormatASCII {
		return "ascii"
	}
	return "binary"
}

// Save writes the model to filename
func Save(filename string, model *Model, format Format) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if format == FormatASCII {
		err = WriteASCII(file, model)
	} else {
		err = WriteBinary(file, model)
	}
	if err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteASCII encodes the model as ASCII STL
func WriteASCII(w io.Writer, model *Model) error {
	bw := bufio.NewWriter(w)
	name := asciiName(model.Name)

	fmt.Fprintf(bw, "solid %s\n", name)
	for _, t := range model.Triangles {
		fmt.Fprintf(bw, "  facet normal %s %s %s\n", formatFloat(t.Normal.X), formatFloat(t.Normal.Y), formatFloat(t.Normal.Z))
		bw.WriteString("    outer loop\n")
		for _, v := range [3][3]float64{
			{t.V1.X, t.V1.Y, t.V1.Z},
			{t.V2.X, t.V2.Y, t.V2.Z},
			{t.V3.X, t.V3.Y, t.V3.Z},
		} {
			fmt.Fprintf(bw, "      vertex %s %s %s\n", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
		}
		bw.WriteString("    endloop\n")
		bw.WriteString("  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write ASCII STL: %w", err)
	}
	return nil
}

// WriteBinary encodes the model as binary STL
func WriteBinary(w io.Writer, model *Model) error {
	if uint64(len(model.Triangles)) > math.MaxUint32 {
		return fmt.Errorf("too many triangles for binary STL: %d", len(model.Triangles))
	}

	bw := bufio.NewWriter(w)

	var header [binaryHeaderSize]byte
	// a binary header starting with "solid" would be mistaken for ASCII
	copy(header[:], strings.TrimSpace(strings.TrimPrefix(model.Name, "solid")))
	if _, err := bw.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(model.Triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range model.Triangles {
		facet := binaryFacet{
			Normal: toFloat32(t.Normal),
			V1:     toFloat32(t.V1),
			V2:     toFloat32(t.V2),
			V3:     toFloat32(t.V3),
		}
		if err := binary.Write(bw, binary.LittleEndian, &facet); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write binary STL: %w", err)
	}
	return nil
}

func asciiName(name string) string {
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		return "gospline"
	}
	return name
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%e", v)
}

package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gospline/pkg/geometry"
)

// binaryHeaderSize is the fixed header length of a binary STL file
const binaryHeaderSize = 80

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader reads an STL model from r, detecting the format from the first bytes
func ParseReader(r io.Reader) (*Model, error) {
	reader := bufio.NewReader(r)

	header, err := reader.Peek(binaryHeaderSize + 4)
	if err != nil && len(header) == 0 {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	// Binary files may also start with "solid" in their header, so an ASCII
	// candidate must carry a facet keyword near the start as well
	if bytes.HasPrefix(header, []byte("solid")) && looksLikeASCII(reader) {
		return parseASCII(reader)
	}

	return parseBinary(reader)
}

func looksLikeASCII(reader *bufio.Reader) bool {
	head, _ := reader.Peek(512)
	return bytes.Contains(head, []byte("facet")) || bytes.Contains(head, []byte("endsolid"))
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				normal, err := parseVector(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid normal: %w", lineNo, err)
				}
				currentNormal = normal
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			vertex, err := parseVector(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNo, err)
			}
			vertices = append(vertices, vertex)

		case "endfacet":
			if len(vertices) == 3 {
				triangle := geometry.NewTriangle(
					currentNormal,
					vertices[0],
					vertices[1],
					vertices[2],
				)
				model.AddTriangle(triangle)
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// binaryFacet is the on-disk layout of one triangle in a binary STL file
type binaryFacet struct {
	Normal    [3]float32
	V1        [3]float32
	V2        [3]float32
	V3        [3]float32
	Attribute uint16
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Extract name from header (if present)
	headerStr := string(bytes.TrimRight(header, "\x00 "))
	if len(headerStr) > 0 {
		model.Name = headerStr
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	model.Triangles = make([]geometry.Triangle, 0, min(triangleCount, 1<<20))
	for i := uint32(0); i < triangleCount; i++ {
		var facet binaryFacet
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		model.AddTriangle(geometry.NewTriangle(
			fromFloat32(facet.Normal),
			fromFloat32(facet.V1),
			fromFloat32(facet.V2),
			fromFloat32(facet.V3),
		))
	}

	return model, nil
}

func fromFloat32(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}

func toFloat32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

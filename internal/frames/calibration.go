package frames

import (
	"encoding/binary"
	"fmt"
	"os"
)

// TIFF tag IDs for pixel calibration.
const (
	tagXResolution    = 282
	tagYResolution    = 283
	tagResolutionUnit = 296
)

// micronsPerPixelFromTIFF reads the resolution tags out of a TIFF
// header and converts them to microns per pixel. Microscope exports
// usually record pixels-per-centimeter (unit 3); scanner-style files
// record pixels-per-inch (unit 2).
func micronsPerPixelFromTIFF(path string) (float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	header := make([]byte, 8)
	if _, err := file.Read(header); err != nil {
		return 0, err
	}

	var byteOrder binary.ByteOrder
	switch {
	case header[0] == 'I' && header[1] == 'I':
		byteOrder = binary.LittleEndian
	case header[0] == 'M' && header[1] == 'M':
		byteOrder = binary.BigEndian
	default:
		return 0, fmt.Errorf("not a valid TIFF file")
	}

	ifdOffset := byteOrder.Uint32(header[4:8])
	if _, err := file.Seek(int64(ifdOffset), 0); err != nil {
		return 0, err
	}

	var numEntries uint16
	if err := binary.Read(file, byteOrder, &numEntries); err != nil {
		return 0, err
	}

	var xRes, yRes float64
	var resUnit uint16 = 2 // TIFF default: inches

	for i := uint16(0); i < numEntries; i++ {
		entry := make([]byte, 12)
		if _, err := file.Read(entry); err != nil {
			return 0, err
		}

		tag := byteOrder.Uint16(entry[0:2])
		fieldType := byteOrder.Uint16(entry[2:4])
		valueOffset := byteOrder.Uint32(entry[8:12])

		switch tag {
		case tagXResolution:
			if fieldType == 5 { // RATIONAL
				xRes = readRational(file, int64(valueOffset), byteOrder)
			}
		case tagYResolution:
			if fieldType == 5 {
				yRes = readRational(file, int64(valueOffset), byteOrder)
			}
		case tagResolutionUnit:
			if fieldType == 3 { // SHORT
				resUnit = uint16(valueOffset)
			}
		}
	}

	// Pixels per unit; prefer X, fall back to Y.
	res := xRes
	if res == 0 {
		res = yRes
	}
	if res == 0 {
		return 0, fmt.Errorf("no resolution tags found")
	}

	var micronsPerUnit float64
	switch resUnit {
	case 2:
		micronsPerUnit = 25400 // inch
	case 3:
		micronsPerUnit = 10000 // centimeter
	default:
		return 0, fmt.Errorf("resolution unit %d is dimensionless", resUnit)
	}

	return micronsPerUnit / res, nil
}

// readRational reads a RATIONAL value (two uint32s) at the offset.
func readRational(file *os.File, offset int64, byteOrder binary.ByteOrder) float64 {
	currentPos, _ := file.Seek(0, 1)
	defer file.Seek(currentPos, 0)

	file.Seek(offset, 0)
	var num, denom uint32
	binary.Read(file, byteOrder, &num)
	binary.Read(file, byteOrder, &denom)

	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

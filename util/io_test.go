package util

import (
	"testing"
)

type CSVStopTest struct {
	ID         int     `csv:"stop_id"`
	Name       string  `csv:"stop_name"`
	Lat        float32 `csv:"stop_lat"`
	Lon        float32 `csv:"stop_lon"`
	Wheelchair bool    `csv:"wheelchair_boarding"`
}

func TestCSVStops(t *testing.T) {
	file := "./testdata/stops.csv"

	i := 0
	for row := range ReadCSVFromFile[CSVStopTest](file, ';') {
		if i == 0 {
			if row.ID != 100 || row.Name != "Hauptbahnhof" || row.Lat != 52.525 || row.Lon != 13.369 || row.Wheelchair != true {
				t.Errorf("row = %v; want Hauptbahnhof", row)
			}
		} else if i == 1 {
			if row.ID != 101 || row.Name != "Alexanderplatz" || row.Wheelchair != false {
				t.Errorf("row = %v; want Alexanderplatz", row)
			}
		} else if i == 2 {
			// empty values keep the zero value
			if row.ID != 102 || row.Name != "" || row.Lat != 52.506 {
				t.Errorf("row = %v; want empty name", row)
			}
		} else {
			t.Errorf("too many rows")
		}
		i++
	}
	if i != 3 {
		t.Errorf("rows = %v; want 3", i)
	}
}

func TestCSVMalformed(t *testing.T) {
	file := "./testdata/malformed.csv"

	i := 0
	for row := range ReadCSVFromFile[CSVStopTest](file, ';') {
		if i == 0 {
			if row.ID != 100 || row.Name != "Hauptbahnhof" {
				t.Errorf("row = %v; want Hauptbahnhof", row)
			}
		} else if i == 1 {
			// the truncated row is skipped, unparsable values fall back to zero
			if row.ID != 102 || row.Wheelchair != false {
				t.Errorf("row = %v; want Zoologischer Garten", row)
			}
		} else {
			t.Errorf("too many rows")
		}
		i++
	}
	if i != 2 {
		t.Errorf("rows = %v; want 2", i)
	}
}

func TestBufferRoundtrip(t *testing.T) {
	writer := NewBufferWriter()
	Write(writer, int32(42))
	Write(writer, float32(1.5))
	arr := NewArray[int32](3)
	arr[0], arr[1], arr[2] = 7, 8, 9
	WriteArray(writer, arr)

	reader := NewBufferReader(writer.Bytes())
	if v := Read[int32](reader); v != 42 {
		t.Errorf("Read = %v; want 42", v)
	}
	if v := Read[float32](reader); v != 1.5 {
		t.Errorf("Read = %v; want 1.5", v)
	}
	back := ReadArray[int32](reader)
	if back.Length() != 3 || back[0] != 7 || back[2] != 9 {
		t.Errorf("ReadArray = %v; want [7 8 9]", back)
	}
}

func TestArrayFileRoundtrip(t *testing.T) {
	file := t.TempDir() + "/values"

	arr := NewArray[int64](4)
	arr[0], arr[1], arr[2], arr[3] = 1, 2, 3, 4
	WriteArrayToFile(arr, file)
	back := ReadArrayFromFile[int64](file)
	if back.Length() != 4 || back[3] != 4 {
		t.Errorf("ReadArrayFromFile = %v; want [1 2 3 4]", back)
	}
}

package util

import (
	"bytes"
	"encoding/binary"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"reflect"
	"strconv"
)

//*******************************************
// binary buffers
//*******************************************

type BufferReader struct {
	reader *bytes.Reader
}

func NewBufferReader(data []byte) BufferReader {
	return BufferReader{
		reader: bytes.NewReader(data),
	}
}

func Read[T any](reader BufferReader) T {
	var value T
	binary.Read(reader.reader, binary.LittleEndian, &value)
	return value
}

func ReadArray[T any](reader BufferReader) Array[T] {
	var size int32
	binary.Read(reader.reader, binary.LittleEndian, &size)
	value := NewArray[T](int(size))
	binary.Read(reader.reader, binary.LittleEndian, &value)
	return value
}

type BufferWriter struct {
	buffer *bytes.Buffer
}

func NewBufferWriter() BufferWriter {
	return BufferWriter{
		buffer: &bytes.Buffer{},
	}
}

func (self *BufferWriter) Bytes() []byte {
	return self.buffer.Bytes()
}

func Write[T any](writer BufferWriter, value T) {
	binary.Write(writer.buffer, binary.LittleEndian, value)
}

func WriteArray[T any](writer BufferWriter, value Array[T]) {
	binary.Write(writer.buffer, binary.LittleEndian, int32(value.Length()))
	binary.Write(writer.buffer, binary.LittleEndian, value)
}

//*******************************************
// file io
//*******************************************

func WriteArrayToFile[T any](value Array[T], file string) {
	writer := NewBufferWriter()
	WriteArray(writer, value)

	f, _ := os.Create(file)
	defer f.Close()
	f.Write(writer.Bytes())
}

func ReadArrayFromFile[T any](file string) Array[T] {
	_, err := os.Stat(file)
	if errors.Is(err, os.ErrNotExist) {
		panic("file not found: " + file)
	}

	data, _ := os.ReadFile(file)
	reader := NewBufferReader(data)
	return ReadArray[T](reader)
}

func WriteJSONToFile[T any](value T, file string) {
	data, _ := json.Marshal(value)

	f, _ := os.Create(file)
	defer f.Close()
	f.Write(data)
}

func ReadJSONFromFile[T any](file string) T {
	_, err := os.Stat(file)
	if errors.Is(err, os.ErrNotExist) {
		panic("file not found: " + file)
	}

	data, _ := os.ReadFile(file)
	var value T
	json.Unmarshal(data, &value)
	return value
}

//*******************************************
// csv io
//*******************************************

// Iterates rows of a csv file decoded into T using "csv" struct tags.
// Unknown columns and empty values are skipped.
func ReadCSVFromFile[T any](filename string, delimiter rune) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		file, err := os.Open(filename)
		if err != nil {
			panic(err)
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.Comma = delimiter
		header, err := reader.Read()
		if err != nil {
			panic(err)
		}
		columns := NewDict[string, int](10)
		for i, name := range header {
			columns[name] = i
		}

		var val T
		typ := reflect.TypeOf(val)
		fields := NewList[Tuple[int, int]](typ.NumField())
		for i := 0; i < typ.NumField(); i++ {
			tag := typ.Field(i).Tag.Get("csv")
			if tag == "" || !columns.ContainsKey(tag) {
				continue
			}
			fields.Add(MakeTuple(i, columns[tag]))
		}

		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			} else if err != nil {
				continue
			}
			t := reflect.New(typ).Elem()
			for _, field := range fields {
				if field.B >= len(record) {
					continue
				}
				value := record[field.B]
				if value == "" {
					continue
				}
				f := t.Field(field.A)
				switch f.Kind() {
				case reflect.Bool:
					num, _ := strconv.ParseBool(value)
					f.SetBool(num)
				case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
					num, _ := strconv.ParseInt(value, 10, 64)
					f.SetInt(num)
				case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
					num, _ := strconv.ParseUint(value, 10, 64)
					f.SetUint(num)
				case reflect.Float32, reflect.Float64:
					num, _ := strconv.ParseFloat(value, 64)
					f.SetFloat(num)
				case reflect.String:
					f.SetString(value)
				}
			}
			if !yield(t.Interface().(T)) {
				break
			}
		}
	}
}

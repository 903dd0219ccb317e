// Package jsonq runs a configured query over the records of a JSON array.
//
// Records are gjson results that keep their raw text, so filtering and
// sorting read fields in place and the output reuses the input bytes for
// every record that is not projected. Projection builds new records with
// sjson.
package jsonq

// Package encode writes [ir.Value] trees as literal table text, the inverse
// of package parse.
//
// Tables are always written in multi-line form with a trailing comma after
// every entry:
//
//	{
//	  name = "Flaria",
//	  ["first name"] = "x",
//	  level = 60,
//	}
//
// Empty arrays and objects are written "{}". The output of [Encode] carries
// no trailing newline so it can be spliced into an existing file.
//
// [EncodeFormat] switches the output to JSON or YAML for display.
package encode

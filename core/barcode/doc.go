// Package barcode turns the raw UPC/EAN digit runs found in the accounting export
// into checksummed EAN-13 codes.
//
// The export is known to carry truncated codes (check digit left out), codes with a
// wrong check digit, and short dead codes. Normalize is forgiving: it repairs what can
// be repaired and silently drops the rest, so a bad barcode never fails a whole row.
//
// # Usage
//
//	codes := barcode.Normalize("85875500014, 0012345678905")
//	for _, c := range codes {
//	    fmt.Println(c.String())
//	}
//
// Check digit computation is delegated to github.com/boombuler/barcode/ean.
package barcode

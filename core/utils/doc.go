// Package utils provides common conversion helpers for the abc-product application.
// It includes the forgiving numeric parsers used when reading the accounting export,
// where currency symbols, separators and stray markup are common.
package utils

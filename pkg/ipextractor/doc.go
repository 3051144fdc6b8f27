// Package ipextractor finds the public IPv4 addresses mentioned in a PDF.
//
// It can be used as a standalone CLI application (cmd/ipextractor) or
// embedded as a library in other Go programs.
//
// # Basic Usage
//
// To process a document and write report_ips.txt next to it:
//
//	x := ipextractor.New(ipextractor.WithCSV(true))
//	report, err := x.ExtractFile(ctx, "report.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !report.Found() {
//	    fmt.Println("no public IP addresses found")
//	}
//
// To scan text that was extracted elsewhere, without writing files:
//
//	addrs, err := ipextractor.New().Addresses(ctx, page1, page2)
//
// # Output
//
// Addresses are unique, exclude private and reserved ranges, and are sorted
// numerically by octet. The plain text file is always written when at least
// one address is found; CSV and JSON are written when enabled. Output file
// names append _ips to the source stem.
//
// # Errors
//
// [ErrInputNotFound] and [ErrWrongFormat] are returned before any scanning
// takes place. [ErrOutputWrite] is returned when an output file cannot be
// written. Use errors.Is to check for them.
package ipextractor

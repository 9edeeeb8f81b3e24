// Package readings streams vitals.Reading records out of the bench CSV file.
//
// The format is "heart_rate,spo2" pairs separated by whitespace, usually one
// per line and without a header. Scanning stops at the first record that
// does not match; callers treat that as the end of the valid stream.
package readings

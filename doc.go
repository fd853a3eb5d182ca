// Package tsgen generates synthetic time series.
//
// A series is the sum of components evaluated over a shared time grid:
// closed-form seasonal waveforms (package waveform), recursive linear
// processes such as ARIMA and SARIMAX (package linproc), shaped trends, random
// spikes and free-form expressions. Components are usually read from YAML
// (package component); a Synthesizer binds them to a grid and GenerateBatch
// produces many series concurrently. Package envelope extracts smooth low and
// high envelopes from a generated series.
package tsgen

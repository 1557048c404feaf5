package ports

import "seriestat/domain/series"

// SeriesReader loads a two-column series from some source file
type SeriesReader interface {
	Read() (*series.Series, error)
}

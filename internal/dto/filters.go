package dto

import (
	"errors"
	"time"
)

const fechaLayout = "2006-01-02"

// Rango is a closed date interval [Desde, Hasta].
type Rango struct {
	Desde time.Time
	Hasta time.Time
}

// FechaFilter is the shared date predicate of cierres/trackeo queries: either
// an explicit fechaDesde/fechaHasta pair, or a (mes, anio) pair, or anio alone.
type FechaFilter struct {
	FechaDesde string `json:"fechaDesde" form:"fecha_desde"`
	FechaHasta string `json:"fechaHasta" form:"fecha_hasta"`
	Mes        int    `json:"mes" form:"mes"`
	Anio       int    `json:"anio" form:"anio"`
}

// Rango resolves the filter into a concrete interval, or nil when the filter
// is empty. Month bounds come from the real month length (28/29/30/31).
func (f FechaFilter) Rango() (*Rango, error) {
	if f.FechaDesde != "" || f.FechaHasta != "" {
		r := &Rango{}
		if f.FechaDesde != "" {
			d, err := time.Parse(fechaLayout, f.FechaDesde)
			if err != nil {
				return nil, errors.New("fechaDesde invalida: formato esperado YYYY-MM-DD")
			}
			r.Desde = d
		}
		if f.FechaHasta != "" {
			h, err := time.Parse(fechaLayout, f.FechaHasta)
			if err != nil {
				return nil, errors.New("fechaHasta invalida: formato esperado YYYY-MM-DD")
			}
			r.Hasta = h
		} else {
			// Open upper bound
			r.Hasta = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		}
		return r, nil
	}

	if f.Anio != 0 && f.Mes != 0 {
		if f.Mes < 1 || f.Mes > 12 {
			return nil, errors.New("mes debe estar entre 1 y 12")
		}
		desde := time.Date(f.Anio, time.Month(f.Mes), 1, 0, 0, 0, 0, time.UTC)
		// Day 0 of the next month is the last day of this one
		hasta := time.Date(f.Anio, time.Month(f.Mes)+1, 0, 0, 0, 0, 0, time.UTC)
		return &Rango{Desde: desde, Hasta: hasta}, nil
	}

	if f.Anio != 0 {
		return &Rango{
			Desde: time.Date(f.Anio, 1, 1, 0, 0, 0, 0, time.UTC),
			Hasta: time.Date(f.Anio, 12, 31, 0, 0, 0, 0, time.UTC),
		}, nil
	}

	return nil, nil
}

// RangoAnio is the [Jan 1, Dec 31] interval of a year.
func RangoAnio(anio int) Rango {
	return Rango{
		Desde: time.Date(anio, 1, 1, 0, 0, 0, 0, time.UTC),
		Hasta: time.Date(anio, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// CaptacionFilter narrows captacion listings.
type CaptacionFilter struct {
	Operacion string `json:"operacion" form:"operacion"`
	ConCierre bool   `json:"conCierre" form:"con_cierre"`
	SinCierre bool   `json:"sinCierre" form:"sin_cierre"`
	Limit     int    `json:"limit" form:"limit"`
}

// ContactoFilter narrows contacto listings (session API only).
type ContactoFilter struct {
	Estado string `form:"estado"`
	TagID  string `form:"tag_id"`
}

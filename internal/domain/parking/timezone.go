package parking

import "time"

// NormalizeUTC lleva un instante a UTC. Todas las comparaciones por fecha del
// paquete pasan por aquí para que día, semana ISO y mes usen la misma zona.
func NormalizeUTC(t time.Time) time.Time {
	return t.UTC()
}

// DateOf devuelve la fecha calendario (medianoche UTC) del instante.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange devuelve [inicio, fin) del día UTC que contiene t.
func DayRange(t time.Time) (start, end time.Time) {
	start = DateOf(t)
	return start, start.AddDate(0, 0, 1)
}

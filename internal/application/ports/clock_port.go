package ports

import "time"

// Clock fuente de tiempo de los casos de uso. Siempre devuelve UTC.
type Clock interface {
	Now() time.Time
}

// SystemClock reloj real.
type SystemClock struct{}

// Now hora actual en UTC.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock reloj detenido, útil en pruebas.
type FixedClock struct{ T time.Time }

// Now devuelve siempre T en UTC.
func (c FixedClock) Now() time.Time { return c.T.UTC() }

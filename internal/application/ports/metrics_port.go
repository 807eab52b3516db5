package ports

import "github.com/shopspring/decimal"

// ParkingObserver recibe los eventos de portería para métricas operativas.
type ParkingObserver interface {
	VehicleEntered(kind string)
	VehicleExited(kind string, amount decimal.Decimal)
	InsideObserved(n int)
}

// NopObserver descarta todos los eventos.
type NopObserver struct{}

func (NopObserver) VehicleEntered(string)                 {}
func (NopObserver) VehicleExited(string, decimal.Decimal) {}
func (NopObserver) InsideObserved(int)                    {}

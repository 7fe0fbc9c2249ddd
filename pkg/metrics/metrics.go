// Package metrics expone contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MovementsRegistered movimientos registrados, por flujo (herramienta|producto) y tipo.
var MovementsRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "inventarios",
	Name:      "movimientos_registrados_total",
	Help:      "Movimientos de inventario registrados con éxito.",
}, []string{"flujo", "tipo"})

// MovementsRejected movimientos rechazados por stock insuficiente.
var MovementsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "inventarios",
	Name:      "movimientos_rechazados_total",
	Help:      "Movimientos rechazados por stock insuficiente.",
}, []string{"flujo"})

// CodesGenerated códigos de escaneo generados, por tipo (barcode|qr).
var CodesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "inventarios",
	Name:      "codigos_generados_total",
	Help:      "Códigos de escaneo generados.",
}, []string{"tipo"})

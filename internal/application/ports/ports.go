package ports

import "github.com/jcampos/albaranes-api/internal/domain/entity"

// Notifier es el puerto de notificaciones salientes (canal interno del
// equipo). Fire-and-forget: nunca devuelve error al llamador y su fallo no
// puede bloquear ni revertir la mutación que lo originó.
type Notifier interface {
	Notify(text string)
}

// EmailSender es el puerto de envío de correo. A diferencia de Notifier se
// espera su resultado para detectar fallos duros de entrega, pero un fallo
// no revierte la operación principal.
type EmailSender interface {
	Send(to, subject, body string) error
}

// AlbaranPDFGenerator genera la representación imprimible de un albarán.
type AlbaranPDFGenerator interface {
	Generate(albaran *entity.Albaran, cliente *entity.Client, emisor entity.Company) ([]byte, error)
}

package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcampos/albaranes-api/internal/application/dto"
	"github.com/jcampos/albaranes-api/internal/application/ports"
	"github.com/jcampos/albaranes-api/internal/domain"
	"github.com/jcampos/albaranes-api/internal/domain/entity"
	"github.com/jcampos/albaranes-api/internal/domain/repository"
)

// ComputeTotal suma cantidad × precioUnitario de todas las líneas. Función
// pura: misma entrada, mismo resultado; líneas con cantidad o precio cero
// aportan cero.
func ComputeTotal(productos []entity.Producto) decimal.Decimal {
	total := decimal.Zero
	for _, p := range productos {
		total = total.Add(p.Cantidad.Mul(p.PrecioUnitario))
	}
	return total
}

// AlbaranUseCase casos de uso de albaranes. Alcance estricto por propietario
// en todas las operaciones; sin archivado, el borrado es siempre físico.
type AlbaranUseCase struct {
	albaranes repository.AlbaranRepository
	clients   repository.ClientRepository
	users     repository.UserRepository
	pdfGen    ports.AlbaranPDFGenerator
}

// NewAlbaranUseCase construye el caso de uso.
func NewAlbaranUseCase(
	albaranes repository.AlbaranRepository,
	clients repository.ClientRepository,
	users repository.UserRepository,
	pdfGen ports.AlbaranPDFGenerator,
) *AlbaranUseCase {
	return &AlbaranUseCase{albaranes: albaranes, clients: clients, users: users, pdfGen: pdfGen}
}

// Create crea un albarán. El total se calcula siempre en el servidor a partir
// de las líneas recibidas.
func (uc *AlbaranUseCase) Create(userID string, in dto.CreateAlbaranRequest) (*dto.AlbaranResponse, error) {
	productos := toProductos(in.Productos)
	albaran := &entity.Albaran{
		ID:        uuid.New().String(),
		ClienteID: in.Cliente,
		Productos: productos,
		Total:     ComputeTotal(productos),
		Fecha:     time.Now(),
		Usuario:   userID,
	}
	if err := uc.albaranes.Create(albaran); err != nil {
		return nil, err
	}
	return toAlbaranResponse(albaran), nil
}

// List lista los albaranes del sujeto.
func (uc *AlbaranUseCase) List(userID string) ([]*dto.AlbaranResponse, error) {
	list, err := uc.albaranes.ListOwned(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AlbaranResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAlbaranResponse(a))
	}
	return out, nil
}

// Get obtiene un albarán del sujeto.
func (uc *AlbaranUseCase) Get(userID, id string) (*dto.AlbaranResponse, error) {
	albaran, err := uc.albaranes.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}
	if albaran == nil {
		return nil, domain.ErrNotFound
	}
	return toAlbaranResponse(albaran), nil
}

// Update aplica un parche parcial. Comportamiento heredado y deliberadamente
// conservado: si el llamador envía total, se almacena tal cual sin contrastar
// con las líneas; si no lo envía, se conserva el total anterior aunque las
// líneas hayan cambiado.
func (uc *AlbaranUseCase) Update(userID, id string, in dto.UpdateAlbaranRequest) (*dto.AlbaranResponse, error) {
	var productos []entity.Producto
	if in.Productos != nil {
		productos = toProductos(in.Productos)
	}
	updated, err := uc.albaranes.UpdateOwned(id, userID, productos, in.Total)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toAlbaranResponse(updated), nil
}

// Delete borra físicamente un albarán del sujeto.
func (uc *AlbaranUseCase) Delete(userID, id string) error {
	ok, err := uc.albaranes.DeleteOwned(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// PDF genera la representación imprimible de un albarán del sujeto. Requiere
// que el cliente referenciado siga siendo alcanzable (no archivado).
func (uc *AlbaranUseCase) PDF(userID, id string) ([]byte, error) {
	albaran, err := uc.albaranes.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}
	if albaran == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.clients.GetOwned(albaran.ClienteID, userID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	var emisor entity.Company
	if user, err := uc.users.GetByID(userID); err == nil && user != nil {
		emisor = user.Company
	}
	return uc.pdfGen.Generate(albaran, cliente, emisor)
}

func toProductos(in []dto.ProductoRequest) []entity.Producto {
	productos := make([]entity.Producto, 0, len(in))
	for _, p := range in {
		productos = append(productos, entity.Producto{
			Nombre:         p.Nombre,
			Cantidad:       p.Cantidad,
			PrecioUnitario: p.PrecioUnitario,
		})
	}
	return productos
}

func toAlbaranResponse(a *entity.Albaran) *dto.AlbaranResponse {
	productos := make([]dto.ProductoResponse, 0, len(a.Productos))
	for _, p := range a.Productos {
		productos = append(productos, dto.ProductoResponse{
			Nombre:         p.Nombre,
			Cantidad:       p.Cantidad,
			PrecioUnitario: p.PrecioUnitario,
		})
	}
	return &dto.AlbaranResponse{
		ID:        a.ID,
		Cliente:   a.ClienteID,
		Productos: productos,
		Total:     a.Total,
		Fecha:     a.Fecha,
		Usuario:   a.Usuario,
	}
}

package usecase

import (
	"sync"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// VendorUseCase casos de uso de proveedores con caché en memoria por ID.
// El catálogo de proveedores es pequeño y de lectura intensiva (cada
// recepción lo consulta), así que se cachea y se invalida en cada escritura.
type VendorUseCase struct {
	repo repository.VendorRepository

	mu    sync.RWMutex
	cache map[int64]*entity.Vendor
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo, cache: make(map[int64]*entity.Vendor)}
}

// Create registra un proveedor nuevo.
func (uc *VendorUseCase) Create(in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	now := time.Now()
	vendor := &entity.Vendor{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Address:       in.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(vendor); err != nil {
		return nil, err
	}
	uc.put(vendor)
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor, primero de caché y si no de la BD.
func (uc *VendorUseCase) GetByID(id int64) (*dto.VendorResponse, error) {
	uc.mu.RLock()
	cached, ok := uc.cache[id]
	uc.mu.RUnlock()
	if ok {
		return toVendorResponse(cached), nil
	}
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	uc.put(vendor)
	return toVendorResponse(vendor), nil
}

// Update actualiza un proveedor y refresca la caché.
func (uc *VendorUseCase) Update(id int64, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	if in.Name != nil {
		vendor.Name = *in.Name
	}
	if in.ContactPerson != nil {
		vendor.ContactPerson = *in.ContactPerson
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Address != nil {
		vendor.Address = *in.Address
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.repo.Update(vendor); err != nil {
		return nil, err
	}
	uc.put(vendor)
	return toVendorResponse(vendor), nil
}

// Delete elimina un proveedor y lo saca de la caché.
func (uc *VendorUseCase) Delete(id int64) error {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.mu.Lock()
	delete(uc.cache, id)
	uc.mu.Unlock()
	return nil
}

// List lista todos los proveedores desde la BD y repuebla la caché.
func (uc *VendorUseCase) List() ([]dto.VendorResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	for _, v := range list {
		uc.cache[v.ID] = v
	}
	uc.mu.Unlock()
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	return items, nil
}

func (uc *VendorUseCase) put(v *entity.Vendor) {
	uc.mu.Lock()
	uc.cache[v.ID] = v
	uc.mu.Unlock()
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:            v.ID,
		Name:          v.Name,
		ContactPerson: v.ContactPerson,
		Phone:         v.Phone,
		Email:         v.Email,
		Address:       v.Address,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

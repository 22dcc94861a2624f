package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// VendorRepository define el puerto de persistencia para Vendor (DIP).
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id int64) (*entity.Vendor, error)
	Update(vendor *entity.Vendor) error
	Delete(id int64) error
	List() ([]*entity.Vendor, error)
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"rental-service/src/internal/entity"
	"rental-service/src/pkg/databases/mysql"
)

type VehicleRepository struct {
	DB mysql.DBInterface
}

func NewVehicleRepository(db mysql.DBInterface) *VehicleRepository {
	return &VehicleRepository{
		DB: db,
	}
}

const vehicleColumns = `
	id, name, type, category,
	price_in_city, price_out_city, price_12h, price_24h,
	image, specs, description, available, created_at, updated_at`

func (r *VehicleRepository) FindByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var vehicle entity.Vehicle
	err = db.GetContext(ctx, &vehicle, `SELECT`+vehicleColumns+` FROM vehicles WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) List(ctx context.Context, vehicleType string, availableOnly bool) ([]entity.Vehicle, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `SELECT` + vehicleColumns + ` FROM vehicles WHERE 1=1`
	args := []interface{}{}
	if vehicleType != "" {
		query += ` AND type = ?`
		args = append(args, vehicleType)
	}
	if availableOnly {
		query += ` AND available = 1`
	}
	query += ` ORDER BY created_at DESC`

	var vehicles []entity.Vehicle
	if err := db.SelectContext(ctx, &vehicles, query, args...); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) Insert(ctx context.Context, vehicle *entity.Vehicle) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	_, err = db.NamedExecContext(ctx, `
		INSERT INTO vehicles (
			id, name, type, category,
			price_in_city, price_out_city, price_12h, price_24h,
			image, specs, description, available
		) VALUES (
			:id, :name, :type, :category,
			:price_in_city, :price_out_city, :price_12h, :price_24h,
			:image, :specs, :description, :available
		)`, vehicle)
	return err
}

func (r *VehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.NamedExecContext(ctx, `
		UPDATE vehicles
		SET name = :name, type = :type, category = :category,
			price_in_city = :price_in_city, price_out_city = :price_out_city,
			price_12h = :price_12h, price_24h = :price_24h,
			image = :image, specs = :specs, description = :description,
			available = :available, updated_at = NOW()
		WHERE id = :id`, vehicle)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rental-service/src/internal/entity"
	"rental-service/src/internal/model"
	"rental-service/src/internal/repository"
	httpError "rental-service/src/pkg/http-error"
	"rental-service/src/pkg/log"
	"rental-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const vehicleCacheTTL = 10 * time.Minute

type VehicleRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Vehicle, error)
	List(ctx context.Context, vehicleType string, availableOnly bool) ([]entity.Vehicle, error)
	Insert(ctx context.Context, vehicle *entity.Vehicle) error
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	VehicleRepository VehicleRepository
	Redis             redis.UniversalClient
}

func NewVehicleUseCase(
	logger log.Log,
	validate *validator.Validate,
	vehicleRepository VehicleRepository,
	redisClient redis.UniversalClient,
) *VehicleUseCase {
	return &VehicleUseCase{
		Log:               logger,
		Validate:          validate,
		VehicleRepository: vehicleRepository,
		Redis:             redisClient,
	}
}

func (c *VehicleUseCase) List(ctx context.Context, request *model.ListVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	key := fmt.Sprintf("VEHICLE:LIST:%s:%t", request.Type, request.AvailableOnly)
	if c.Redis != nil {
		if cached, err := c.Redis.Get(ctx, key).Result(); err == nil && cached != "" {
			var vehicles []entity.Vehicle
			if err := json.Unmarshal([]byte(cached), &vehicles); err == nil {
				result.Data = vehicles
				return result
			}
		}
	}

	vehicles, err := c.VehicleRepository.List(ctx, request.Type, request.AvailableOnly)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to list vehicles"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", err.Error(), "List", request.Type)
		return result
	}

	if c.Redis != nil {
		if payload, err := json.Marshal(vehicles); err == nil {
			if err := c.Redis.Set(ctx, key, payload, vehicleCacheTTL).Err(); err != nil {
				c.Log.Error("vehicle-usecase", err.Error(), "List", "cache-set")
			}
		}
	}

	result.Data = vehicles
	return result
}

func (c *VehicleUseCase) Detail(ctx context.Context, request *model.VehicleDetailRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	key := fmt.Sprintf("VEHICLE:DETAIL:%s", request.VehicleID)
	if c.Redis != nil {
		if cached, err := c.Redis.Get(ctx, key).Result(); err == nil && cached != "" {
			var vehicle entity.Vehicle
			if err := json.Unmarshal([]byte(cached), &vehicle); err == nil {
				result.Data = &vehicle
				return result
			}
		}
	}

	vehicle, err := c.VehicleRepository.FindByID(ctx, request.VehicleID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("vehicle with id %s not found", request.VehicleID)
		result.Error = errObj
		return result
	}

	if c.Redis != nil {
		if payload, err := json.Marshal(vehicle); err == nil {
			if err := c.Redis.Set(ctx, key, payload, vehicleCacheTTL).Err(); err != nil {
				c.Log.Error("vehicle-usecase", err.Error(), "Detail", "cache-set")
			}
		}
	}

	result.Data = vehicle
	return result
}

func (c *VehicleUseCase) AdminCreate(ctx context.Context, request *model.UpsertVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	vehicle := vehicleFromRequest(request)
	vehicle.ID = uuid.NewString()

	if err := c.VehicleRepository.Insert(ctx, vehicle); err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to create vehicle"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", err.Error(), "AdminCreate", utils.ConvertString(request))
		return result
	}

	c.invalidateCache(ctx, vehicle.ID)
	result.Data = vehicle
	return result
}

func (c *VehicleUseCase) AdminUpdate(ctx context.Context, request *model.UpsertVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	vehicle := vehicleFromRequest(request)
	vehicle.ID = request.VehicleID

	if err := c.VehicleRepository.Update(ctx, vehicle); err != nil {
		if err == repository.ErrNotFound {
			errObj := httpError.NewNotFound()
			errObj.Message = "vehicle not found"
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to update vehicle"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", err.Error(), "AdminUpdate", vehicle.ID)
		return result
	}

	c.invalidateCache(ctx, vehicle.ID)
	result.Data = vehicle
	return result
}

func (c *VehicleUseCase) AdminDelete(ctx context.Context, request *model.DeleteVehicleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	if err := c.VehicleRepository.Delete(ctx, request.VehicleID); err != nil {
		if err == repository.ErrNotFound {
			errObj := httpError.NewNotFound()
			errObj.Message = "vehicle not found"
			result.Error = errObj
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = "failed to delete vehicle"
		result.Error = errObj
		c.Log.Error("vehicle-usecase", err.Error(), "AdminDelete", request.VehicleID)
		return result
	}

	c.invalidateCache(ctx, request.VehicleID)
	return result
}

func (c *VehicleUseCase) invalidateCache(ctx context.Context, vehicleID string) {
	if c.Redis == nil {
		return
	}

	keys := []string{fmt.Sprintf("VEHICLE:DETAIL:%s", vehicleID)}
	for _, t := range []string{"", entity.VehicleTypeCar, entity.VehicleTypeMotorbike} {
		keys = append(keys,
			fmt.Sprintf("VEHICLE:LIST:%s:%t", t, true),
			fmt.Sprintf("VEHICLE:LIST:%s:%t", t, false),
		)
	}
	if err := c.Redis.Del(ctx, keys...).Err(); err != nil {
		c.Log.Error("vehicle-usecase", err.Error(), "invalidateCache", vehicleID)
	}
}

func vehicleFromRequest(request *model.UpsertVehicleRequest) *entity.Vehicle {
	specs, _ := json.Marshal(request.Specs)
	available := true
	if request.Available != nil {
		available = *request.Available
	}

	return &entity.Vehicle{
		Name:         request.Name,
		Type:         request.Type,
		Category:     request.Category,
		PriceInCity:  request.PriceInCity,
		PriceOutCity: request.PriceOutCity,
		Price12h:     request.Price12h,
		Price24h:     request.Price24h,
		Image:        request.Image,
		Specs:        specs,
		Description:  request.Description,
		Available:    available,
	}
}

var _ VehicleRepository = (*repository.VehicleRepository)(nil)

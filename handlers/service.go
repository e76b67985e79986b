package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	serviceRepo "handyhub/database/repository/service"
	"handyhub/models"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ServiceHandler exposes catalog reads. The catalog itself is managed
// elsewhere; this surface exists so clients can browse what is bookable and
// see the denormalized rating fields.
type ServiceHandler struct {
	Repo  serviceRepo.ServiceRepository
	Cache *redis.Client
}

// Get handles GET /api/services/:id, serving from the snapshot cache when
// warm. Review submission invalidates the snapshot, so a hit is at most
// ServiceCacheTTL stale and never survives a rating change.
func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if h.Cache != nil {
		raw, err := h.Cache.Get(ctx, utils.ServiceCacheKey(id)).Result()
		if err == nil {
			var svc models.Service
			if err := json.Unmarshal([]byte(raw), &svc); err == nil {
				c.JSON(http.StatusOK, svc)
				return
			}
		} else if !errors.Is(err, redis.Nil) {
			utils.GetLogger().Warn("service cache read failed", zap.String("serviceId", id), zap.Error(err))
		}
	}

	svc, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			utils.JSONDomainError(c, utils.NotFoundf("service %s not found", id))
			return
		}
		utils.JSONDomainError(c, utils.InternalError(err))
		return
	}

	if h.Cache != nil {
		if data, err := json.Marshal(svc); err == nil {
			if err := h.Cache.Set(ctx, utils.ServiceCacheKey(id), data, utils.ServiceCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("service cache write failed", zap.String("serviceId", id), zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, svc)
}

// List handles GET /api/services (active services only).
func (h *ServiceHandler) List(c *gin.Context) {
	out, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONDomainError(c, utils.InternalError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": out})
}

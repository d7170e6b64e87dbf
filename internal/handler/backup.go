package handler

import (
	"net/http"

	"donation-dashboard-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// BackupHandler handles the manual export/import of the five collections.
type BackupHandler struct {
	*BaseHandler
	store domain.Store
}

// NewBackupHandler creates a new BackupHandler instance.
func NewBackupHandler(store domain.Store, logger *logrus.Logger) *BackupHandler {
	return &BackupHandler{
		BaseHandler: NewBaseHandler(logger),
		store:       store,
	}
}

// GetBackup handles the full snapshot export.
func (h *BackupHandler) GetBackup(c echo.Context) error {
	logEntry := h.logRequest(c, "export_data")
	logEntry.Info("Exporting data")

	snapshot, err := h.store.Export(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to export data")
		return writeDomainError(c, err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

// PostBackup handles a snapshot restore. Collections absent from the body
// are left untouched.
func (h *BackupHandler) PostBackup(c echo.Context) error {
	var snapshot domain.Snapshot
	if err := c.Bind(&snapshot); err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "import_data").WithFields(logrus.Fields{
		"users":      len(snapshot.Users),
		"teams":      len(snapshot.Teams),
		"activities": len(snapshot.Activities),
	})
	logEntry.Info("Importing data")

	if err := h.store.Import(c.Request().Context(), snapshot); err != nil {
		logEntry.WithError(err).Error("Failed to import data")
		return writeDomainError(c, err)
	}

	logEntry.Info("Data imported")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
	})
}

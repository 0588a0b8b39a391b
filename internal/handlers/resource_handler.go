package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nadhifr/quizadmin/internal/dialog"
	"github.com/nadhifr/quizadmin/internal/helpers"
	"github.com/nadhifr/quizadmin/internal/store"
)

// apiError carries a status code alongside the user-facing message so hooks
// can reject a save without knowing anything about gin.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string { return e.Message }

func Conflict(message string) error {
	return &apiError{Status: http.StatusConflict, Message: message}
}

func BadRequest(message string) error {
	return &apiError{Status: http.StatusBadRequest, Message: message}
}

// Update is a validated partial change bound from a request body. Check runs
// before Merge and may veto the save; Merge only touches the fields the
// request actually carried, so everything else keeps its previous value.
type Update[T any] struct {
	Check func(id uuid.UUID) error
	Merge func(T)
}

// Resource wires one entity collection to the uniform set of admin screen
// endpoints: list with free-text filter, form seeds for the create/edit
// dialog, create, partial update, and confirmed delete. The same type backs
// all six resource screens; only the configuration differs.
type Resource[T store.Entity] struct {
	// Label is the singular display name used in messages ("Category").
	Label string
	// Key is the plural json key the list response uses ("categories").
	Key string

	Collection *store.Collection[T]

	// Searchable extracts the fields the list filter matches against.
	Searchable func(T) []string
	// Defaults is the initial form state for a create dialog.
	Defaults func() gin.H
	// Decorate, when set, maps an entity to its read representation
	// (e.g. resolving categoryName on questions). It must not mutate the
	// stored entity.
	Decorate func(T) T

	BindCreate   func(*gin.Context) (T, error)
	BeforeCreate func(candidate T) error
	BindUpdate   func(*gin.Context) (Update[T], error)

	dialog  dialog.Dialog
	deletes dialog.DeleteGate
}

// Register mounts the resource's routes on the group.
func (r *Resource[T]) Register(g *gin.RouterGroup) {
	g.GET("", r.List)
	g.POST("", r.Create)
	g.GET("/form", r.CreateForm)
	g.POST("/form/cancel", r.CancelForm)
	g.GET("/:id", r.Get)
	g.GET("/:id/form", r.EditForm)
	g.PUT("/:id", r.Update)
	g.DELETE("/:id", r.Delete)
	g.POST("/:id/cancel-delete", r.CancelDelete)
}

func (r *Resource[T]) List(c *gin.Context) {
	items := r.Collection.List()
	if r.Decorate != nil {
		for i, item := range items {
			items[i] = r.Decorate(item)
		}
	}

	query := c.Query("q")
	filtered := store.Filter(items, query, r.Searchable)

	c.JSON(http.StatusOK, gin.H{
		r.Key:   filtered,
		"total": len(filtered),
	})
}

func (r *Resource[T]) Get(c *gin.Context) {
	id, ok := r.entityID(c)
	if !ok {
		return
	}

	item, err := r.Collection.Get(id)
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, r.Label+" not found.")
		return
	}
	if r.Decorate != nil {
		item = r.Decorate(item)
	}
	c.JSON(http.StatusOK, item)
}

// CreateForm opens the dialog in create mode and returns the entity's
// default form values for pre-population.
func (r *Resource[T]) CreateForm(c *gin.Context) {
	r.dialog.OpenCreate()
	c.JSON(http.StatusOK, gin.H{
		"mode":   "create",
		"values": r.Defaults(),
	})
}

// EditForm opens the dialog in edit mode, seeded with the entity's current
// field values. Opening while another dialog is open replaces it.
func (r *Resource[T]) EditForm(c *gin.Context) {
	id, ok := r.entityID(c)
	if !ok {
		return
	}

	item, err := r.Collection.Get(id)
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, r.Label+" not found.")
		return
	}
	if r.Decorate != nil {
		item = r.Decorate(item)
	}

	r.dialog.OpenEdit(id)
	c.JSON(http.StatusOK, gin.H{
		"mode":   "edit",
		"values": item,
	})
}

func (r *Resource[T]) CancelForm(c *gin.Context) {
	r.dialog.Cancel()
	c.JSON(http.StatusOK, gin.H{"message": "Cancelled."})
}

func (r *Resource[T]) Create(c *gin.Context) {
	candidate, err := r.BindCreate(c)
	if err != nil {
		r.respondBindError(c, err)
		return
	}

	if r.BeforeCreate != nil {
		if err := r.BeforeCreate(candidate); err != nil {
			r.respondHookError(c, err)
			return
		}
	}

	created := r.Collection.Create(candidate)
	if r.Decorate != nil {
		created = r.Decorate(created)
	}
	r.dialog.SubmitSuccess()

	c.JSON(http.StatusCreated, gin.H{
		"message": r.Label + " created successfully.",
		"data":    created,
	})
}

func (r *Resource[T]) Update(c *gin.Context) {
	id, ok := r.entityID(c)
	if !ok {
		return
	}

	update, err := r.BindUpdate(c)
	if err != nil {
		r.respondBindError(c, err)
		return
	}

	if update.Check != nil {
		if err := update.Check(id); err != nil {
			r.respondHookError(c, err)
			return
		}
	}

	updated, err := r.Collection.Update(id, update.Merge)
	if err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, r.Label+" not found.")
		return
	}
	if r.Decorate != nil {
		updated = r.Decorate(updated)
	}
	r.dialog.SubmitSuccess()

	c.JSON(http.StatusOK, gin.H{
		"message": r.Label + " updated successfully.",
		"data":    updated,
	})
}

// Delete is a two-step removal. The first call arms the confirmation gate
// and removes nothing; repeating the call with ?confirm=true performs the
// removal. Cancelling returns the gate to its idle state with the
// collection untouched.
func (r *Resource[T]) Delete(c *gin.Context) {
	id, ok := r.entityID(c)
	if !ok {
		return
	}

	if _, err := r.Collection.Get(id); err != nil {
		r.deletes.Cancel()
		helpers.RespondWithError(c, http.StatusNotFound, r.Label+" not found.")
		return
	}

	if c.Query("confirm") != "true" {
		r.deletes.Request(id)
		c.JSON(http.StatusAccepted, gin.H{
			"message":        "Confirm deletion to proceed.",
			"pending_delete": id,
		})
		return
	}

	if !r.deletes.Confirm(id) {
		helpers.RespondWithError(c, http.StatusConflict, "No deletion pending for this "+r.Label+". Request deletion first.")
		return
	}

	if err := r.Collection.Remove(id); err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, r.Label+" not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": r.Label + " deleted successfully."})
}

func (r *Resource[T]) CancelDelete(c *gin.Context) {
	if _, ok := r.entityID(c); !ok {
		return
	}
	r.deletes.Cancel()
	c.JSON(http.StatusOK, gin.H{"message": "Deletion cancelled."})
}

// PendingDelete exposes the armed delete target.
func (r *Resource[T]) PendingDelete() (uuid.UUID, bool) {
	return r.deletes.Pending()
}

func (r *Resource[T]) entityID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid "+r.Label+" id.")
		return uuid.Nil, false
	}
	return id, true
}

func (r *Resource[T]) respondBindError(c *gin.Context, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		helpers.RespondWithError(c, apiErr.Status, apiErr.Message)
		return
	}
	helpers.RespondWithBindingError(c, err)
}

func (r *Resource[T]) respondHookError(c *gin.Context, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		helpers.RespondWithError(c, apiErr.Status, apiErr.Message)
		return
	}
	helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to save "+r.Label+".")
}

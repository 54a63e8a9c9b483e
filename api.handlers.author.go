package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// HandleInventoryError translates an inventory operation failure into
// the api error envelope. Validation-class failures map to 400, missing
// addressed records to 404 and refused author deletions to 409. The
// submitted author reference failure is a 400 on purpose since it
// concerns a submitted value, not the resource addressed by the path.
func (api *APIHandler) HandleInventoryError(w http.ResponseWriter, requestID, message string, err error) {
	var (
		validationErr *ValidationError
		unknownErr    *UnknownAuthorError
		dependentsErr *DependentBooksError
	)

	var errResp *APIError
	switch {
	case errors.As(err, &validationErr):
		errResp = NewAPIError(requestID, http.StatusBadRequest, CodeValidationError, message, validationErr.Fields)
	case errors.As(err, &unknownErr):
		errResp = NewAPIError(requestID, http.StatusBadRequest, CodeValidationError, "author not found",
			[]string{"the selected author does not exist"})
	case errors.As(err, &dependentsErr):
		errResp = NewAPIError(requestID, http.StatusConflict, CodeConflict,
			"cannot delete an author who still has books registered",
			fmt.Sprintf("author has %d book(s) registered", dependentsErr.Count))
	case errors.Is(err, ErrAuthorNotFound):
		errResp = NewAPIError(requestID, http.StatusNotFound, CodeNotFound, "author does not exist", EmptyData)
	case errors.Is(err, ErrBookNotFound):
		errResp = NewAPIError(requestID, http.StatusNotFound, CodeNotFound, "book does not exist", EmptyData)
	default:
		errResp = NewAPIError(requestID, http.StatusInternalServerError, CodeInternalError, message, EmptyData)
	}

	if werr := WriteErrorResponse(w, errResp); werr != nil {
		api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(werr))
	}
}

func (api *APIHandler) CreateAuthor(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	author := Author{}
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	err := DecodeAuthorRequestBody(r, &author)
	if err != nil {
		api.logger.Error("failed to create author", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, CodeValidationError, "failed to create the author", EmptyData)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	created, err := api.inventory.CreateAuthor(r.Context(), author)
	if err != nil {
		api.logger.Error("failed to create author", zap.String("request.id", requestID), zap.Error(err))
		api.HandleInventoryError(w, requestID, "failed to create the author", err)
		return
	}
	api.logger.Info("success to create author", zap.String("author.id", created.ID), zap.String("request.id", requestID))
	resp := GenericResponse(requestID, http.StatusCreated, "Author created successfully.", nil, created)
	if err = WriteResponse(w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

func (api *APIHandler) GetAllAuthors(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	authors, err := api.inventory.GetAllAuthors(r.Context())
	if err != nil {
		api.logger.Error("failed to get all authors", zap.String("request.id", requestID), zap.Error(err))
		api.HandleInventoryError(w, requestID, "failed to get all authors", err)
		return
	}
	api.logger.Info("success to get all authors", zap.String("request.id", requestID))
	total := len(authors)
	resp := GenericResponse(requestID, http.StatusOK, "All authors fetched successfully.", &total, authors)
	if err = WriteResponse(w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

func (api *APIHandler) GetOneAuthor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	if ok := api.idsHandler.IsValid(id, AuthorIDPrefix); !ok {
		api.logger.Error("author id provided is not valid", zap.String("author.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, CodeValidationError, "author id provided is not valid", EmptyData)
		if err := WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	author, err := api.inventory.GetOneAuthor(r.Context(), id)
	if err != nil {
		api.logger.Error("failed to get author", zap.String("author.id", id), zap.String("request.id", requestID), zap.Error(err))
		api.HandleInventoryError(w, requestID, "failed to get the author", err)
		return
	}
	api.logger.Info("success to get author", zap.String("author.id", id), zap.String("request.id", requestID))
	resp := GenericResponse(requestID, http.StatusOK, "Author fetched successfully.", nil, author)
	if err = WriteResponse(w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

func (api *APIHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var author Author
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	if ok := api.idsHandler.IsValid(id, AuthorIDPrefix); !ok {
		api.logger.Error("author id provided is not valid", zap.String("author.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, CodeValidationError, "author id provided is not valid", EmptyData)
		if err := WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	err := DecodeAuthorRequestBody(r, &author)
	if err != nil {
		api.logger.Error("failed to update author", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, CodeValidationError, "failed to update the author", EmptyData)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	updated, err := api.inventory.UpdateAuthor(r.Context(), id, author)
	if err != nil {
		api.logger.Error("failed to update author", zap.String("author.id", id), zap.String("request.id", requestID), zap.Error(err))
		api.HandleInventoryError(w, requestID, "failed to update the author", err)
		return
	}
	api.logger.Info("success to update author", zap.String("author.id", id), zap.String("request.id", requestID))
	resp := GenericResponse(requestID, http.StatusOK, "Author updated successfully.", nil, updated)
	if err = WriteResponse(w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

func (api *APIHandler) DeleteOneAuthor(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), RequestIDContextKey)
	id := ps.ByName("id")
	if ok := api.idsHandler.IsValid(id, AuthorIDPrefix); !ok {
		api.logger.Error("author id provided is not valid", zap.String("author.id", id), zap.String("request.id", requestID))
		errResp := NewAPIError(requestID, http.StatusBadRequest, CodeValidationError, "author id provided is not valid", EmptyData)
		if err := WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	err := api.inventory.DeleteAuthor(r.Context(), id)
	if err != nil {
		api.logger.Error("failed to delete author", zap.String("author.id", id), zap.String("request.id", requestID), zap.Error(err))
		api.HandleInventoryError(w, requestID, "failed to delete the author", err)
		return
	}
	api.logger.Info("success to delete author", zap.String("author.id", id), zap.String("request.id", requestID))
	resp := GenericResponse(requestID, http.StatusOK, "Author deleted successfully.", nil, nil)
	if err = WriteResponse(w, resp); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

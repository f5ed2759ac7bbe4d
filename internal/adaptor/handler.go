package adaptor

import (
	"errors"
	"net/http"

	"github.com/MuruliCGPayroute/superpetzjp/internal/usecase"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/session"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/storage"
	"github.com/MuruliCGPayroute/superpetzjp/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger uploads spill to temp files.
const maxMultipartMemory = 8 << 20

type Handler struct {
	Auth           *AuthHandler
	Category       *CategoryHandler
	Classification *ClassificationHandler
	Product        *ProductHandler
	Cart           *CartHandler
	Order          *OrderHandler
	Customer       *CustomerHandler
	Dashboard      *DashboardHandler
}

func NewHandler(service *usecase.Service, sessions *session.Manager, saver storage.Saver, log *zap.Logger) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(service.Auth, sessions, log),
		Category:       NewCategoryHandler(service.Category, saver, log),
		Classification: NewClassificationHandler(service.Classification, log),
		Product:        NewProductHandler(service.Product, saver, log),
		Cart:           NewCartHandler(service.Cart, log),
		Order:          NewOrderHandler(service.Order, sessions, log),
		Customer:       NewCustomerHandler(service.Customer, log),
		Dashboard:      NewDashboardHandler(service.Dashboard, log),
	}
}

// handleServiceError maps a service failure onto the response envelope.
// Anything without a client-facing kind becomes a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var svcErr *usecase.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case usecase.KindValidation:
			utils.ResponseBadRequest(w, svcErr.Message, nil)
		case usecase.KindUnauthorized:
			utils.ResponseUnauthorized(w, svcErr.Message)
		case usecase.KindForbidden:
			utils.ResponseForbidden(w, svcErr.Message)
		case usecase.KindNotFound:
			utils.ResponseNotFound(w, svcErr.Message)
		case usecase.KindConflict:
			utils.ResponseConflict(w, svcErr.Message)
		default:
			utils.ResponseBadRequest(w, svcErr.Message, nil)
		}
		return
	}

	log.Error("Unhandled service error", zap.String("operation", operation), zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}

// saveUploadedFile stores the named multipart file and returns its
// generated filename, or nil when the field was not sent.
func saveUploadedFile(r *http.Request, field string, saver storage.Saver) (*string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	filename, err := saver.Save(file, header.Filename)
	if err != nil {
		return nil, err
	}
	return &filename, nil
}

// pathID parses the {id} route parameter, rejecting zero and negatives.
func pathID(r *http.Request, param string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, param))
	if err != nil {
		return 0, false
	}
	return id, true
}

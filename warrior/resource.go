package warrior

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"atlas-warriors/rest"

	"github.com/Chronicle20/atlas-rest/server"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jtumidanski/api2go/jsonapi"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// InitializeRoutes initializes warrior-related REST routes
func InitializeRoutes(db *gorm.DB) func(serverInfo jsonapi.ServerInformation) func(router *mux.Router, logger logrus.FieldLogger) {
	return func(serverInfo jsonapi.ServerInformation) func(router *mux.Router, logger logrus.FieldLogger) {
		return func(router *mux.Router, logger logrus.FieldLogger) {
			router.HandleFunc("/warriors",
				rest.RegisterInputHandler[RestMintRequest](logger)(serverInfo)("mint_warrior", mintWarriorHandler(db))).
				Methods(http.MethodPost)

			router.HandleFunc("/warriors/{warriorId}",
				rest.RegisterHandler(logger)(serverInfo)("get_warrior", getWarriorHandler(db))).
				Methods(http.MethodGet)

			router.HandleFunc("/warriors/{warriorId}/uri",
				rest.RegisterHandler(logger)(serverInfo)("get_warrior_uri", getWarriorURIHandler(db))).
				Methods(http.MethodGet)

			router.HandleFunc("/warriors/{warriorId}/train",
				rest.RegisterInputHandler[RestTrainRequest](logger)(serverInfo)("train_warrior", trainWarriorHandler(db))).
				Methods(http.MethodPost)
		}
	}
}

// getWarriorHandler returns the stat record for a warrior. Unissued
// identifiers answer a zero-valued record rather than an error.
func getWarriorHandler(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseWarriorId(d.Logger(), func(warriorId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				processor := NewProcessor(d.Logger(), d.Context(), db)
				warrior, err := processor.GetById(warriorId)()
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, err.Error())
					return
				}

				restWarrior, err := TransformWarrior(warrior)
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform warrior data")
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[RestWarrior](d.Logger())(w)(c.ServerInformation())(queryParams)(restWarrior)
			}
		})
	}
}

// getWarriorURIHandler returns the metadata snapshot stored at the most
// recent mint or train
func getWarriorURIHandler(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseWarriorId(d.Logger(), func(warriorId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				processor := NewProcessor(d.Logger(), d.Context(), db)
				uri, err := processor.TokenURI(warriorId)()
				if err != nil {
					if errors.Is(err, ErrWarriorNotFound) {
						writeErrorResponse(w, http.StatusNotFound, "Warrior not found")
						return
					}
					writeErrorResponse(w, http.StatusInternalServerError, err.Error())
					return
				}

				restURI, err := TransformWarriorURI(warriorId, uri)
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform warrior URI")
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[RestWarriorURI](d.Logger())(w)(c.ServerInformation())(queryParams)(restURI)
			}
		})
	}
}

// mintWarriorHandler issues a new warrior for the posting character
func mintWarriorHandler(db *gorm.DB) rest.InputHandler[RestMintRequest] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestMintRequest) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			processor := NewProcessor(d.Logger(), d.Context(), db)
			minted, err := processor.MintAndEmit(uuid.New(), input.CharacterId)
			if err != nil {
				writeErrorResponse(w, http.StatusInternalServerError, err.Error())
				return
			}

			restWarrior, err := TransformWarrior(minted)
			if err != nil {
				writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform warrior data")
				return
			}

			w.WriteHeader(http.StatusCreated)
			query := r.URL.Query()
			queryParams := jsonapi.ParseQueryFields(&query)
			server.MarshalResponse[RestWarrior](d.Logger())(w)(c.ServerInformation())(queryParams)(restWarrior)
		}
	}
}

// trainWarriorHandler advances a warrior's stats on behalf of its owner
func trainWarriorHandler(db *gorm.DB) rest.InputHandler[RestTrainRequest] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input RestTrainRequest) http.HandlerFunc {
		return rest.ParseWarriorId(d.Logger(), func(warriorId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				processor := NewProcessor(d.Logger(), d.Context(), db)
				updated, err := processor.TrainAndEmit(uuid.New(), warriorId, input.CharacterId, time.Now())
				if err != nil {
					if errors.Is(err, ErrWarriorNotFound) {
						writeErrorResponse(w, http.StatusNotFound, "Warrior not found")
						return
					}
					if errors.Is(err, ErrNotOwner) {
						writeErrorResponse(w, http.StatusForbidden, "Character does not own warrior")
						return
					}
					writeErrorResponse(w, http.StatusInternalServerError, err.Error())
					return
				}

				restWarrior, err := TransformWarrior(updated)
				if err != nil {
					writeErrorResponse(w, http.StatusInternalServerError, "Failed to transform warrior data")
					return
				}

				query := r.URL.Query()
				queryParams := jsonapi.ParseQueryFields(&query)
				server.MarshalResponse[RestWarrior](d.Logger())(w)(c.ServerInformation())(queryParams)(restWarrior)
			}
		})
	}
}

// writeErrorResponse writes a JSON error response
func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error": map[string]interface{}{
			"status": statusCode,
			"title":  http.StatusText(statusCode),
			"detail": message,
		},
	}

	_ = json.NewEncoder(w).Encode(errorResponse)
}

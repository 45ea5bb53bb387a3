package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evanfield/contactdir/internal/api/shared"
	"github.com/evanfield/contactdir/internal/platform/logger"
	"github.com/evanfield/contactdir/internal/service"
)

// ContactHandler handles the contact directory API requests.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler backed by the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Create handles POST /. It registers a new contact and returns the
// stored record along with a bearer token for the new identity.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	var req CreateContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			"Validation failed", ValidationFieldErrors(err))
		return
	}

	contact, token, err := h.contactService.CreateContact(r.Context(), service.CreateContactParams{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		DOB:        req.DOB,
		Email:      req.Email,
		Phone:      req.Phone,
		Occupation: req.Occupation,
		Company:    req.Company,
		Password:   req.Password,
	})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Info("contact created", slog.String("contact_id", contact.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		Message: "New contact created",
		Data:    contact,
		Token:   token,
	})
}

// List handles GET /. It returns every contact in the directory.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.ListContacts(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		Message: "Contacts retrieved",
		Data:    contacts,
	})
}

// Get handles GET /{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contactService.GetContact(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		Message: "Contact retrieved",
		Data:    contact,
	})
}

// Update handles PUT /{id}. Name, email and phone must be supplied;
// optional fields absent from the body keep their stored values.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			"Validation failed", ValidationFieldErrors(err))
		return
	}

	contact, err := h.contactService.UpdateContact(r.Context(), chi.URLParam(r, "id"),
		service.UpdateContactParams{
			FirstName:  req.FirstName,
			MiddleName: req.MiddleName,
			LastName:   req.LastName,
			DOB:        req.DOB,
			Email:      req.Email,
			Phone:      req.Phone,
			Occupation: req.Occupation,
			Company:    req.Company,
		})
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		Message: "Contact updated",
		Data:    contact,
	})
}

// Delete handles DELETE /{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), slog.Default())

	id := chi.URLParam(r, "id")
	if err := h.contactService.DeleteContact(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Info("contact deleted", slog.String("contact_id", id))

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		Message: "Contact deleted",
	})
}

// Login handles POST /login. It verifies the submitted credentials and
// returns the contact together with a fresh bearer token.
func (h *ContactHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest,
			"Validation failed", ValidationFieldErrors(err))
		return
	}

	contact, token, err := h.contactService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// repeated credential failures are an operational signal
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err, shared.WithElevatedLogLevel())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{
		Message: "Logged in",
		Data:    contact,
		Token:   token,
	})
}

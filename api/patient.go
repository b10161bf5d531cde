package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/katatrina/dentcare-BE/internal/validator"
)

const patientAttachmentFolder = "patients"

type createPatientRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	Allergies   string `json:"allergies"`
	Note        string `json:"note"`
}

func (server *Server) createPatient(ctx *gin.Context) {
	var req createPatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var violations []*FieldViolation
	if err := validator.ValidateFullName(req.FullName); err != nil {
		violations = append(violations, fieldViolation("full_name", err))
	}
	if err := validator.ValidatePhoneNumber(req.Phone); err != nil {
		violations = append(violations, fieldViolation("phone", err))
	}
	if req.Email != "" {
		if err := validator.ValidateEmail(req.Email); err != nil {
			violations = append(violations, fieldViolation("email", err))
		}
	}
	if len(violations) > 0 {
		ctx.JSON(http.StatusBadRequest, failedValidationError(violations))
		return
	}

	patient, err := server.store.CreatePatient(ctx, firedb.CreatePatientParams{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		Allergies:   req.Allergies,
		Note:        req.Note,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, patient)
}

type listPatientsRequest struct {
	Phone  string `form:"phone"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (server *Server) listPatients(ctx *gin.Context) {
	var req listPatientsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	patients, err := server.store.ListPatients(ctx, firedb.ListPatientsParams{
		Phone:  req.Phone,
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, patients)
}

func (server *Server) getPatient(ctx *gin.Context) {
	patient, err := server.store.GetPatient(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

type updatePatientRequest struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"date_of_birth"`
	Address     *string `json:"address"`
	Allergies   *string `json:"allergies"`
	Note        *string `json:"note"`
}

func (server *Server) updatePatient(ctx *gin.Context) {
	var req updatePatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	patient, err := server.store.UpdatePatient(ctx, ctx.Param("id"), firedb.UpdatePatientParams{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		Allergies:   req.Allergies,
		Note:        req.Note,
	})
	if err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, patient)
}

//	@Summary		Upload Patient Attachment
//	@Description	Uploads a document (X-ray scan, treatment plan, consent form) to the patient record
//	@Tags			patients
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Patient ID"
//	@Param			file	formData	file	true	"Document file"
//	@Param			label	formData	string	false	"Document label"
//	@Success		200		{object}	firedb.PatientAttachment
//	@Router			/patients/{id}/attachments [post]
func (server *Server) addPatientAttachment(ctx *gin.Context) {
	patientID := ctx.Param("id")

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	label := ctx.PostForm("label")
	if label == "" {
		label = file.Filename
	}

	uploadedFileURLs, err := server.uploadFileToCloudinary("patient", patientID, patientAttachmentFolder, file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	attachment := firedb.PatientAttachment{
		URL:        uploadedFileURLs[0],
		Label:      label,
		UploadedAt: time.Now(),
	}

	if err = server.store.AddPatientAttachment(ctx, patientID, attachment); err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, attachment)
}

type addTreatmentEntryRequest struct {
	Date      string `json:"date" binding:"required"`
	Treatment string `json:"treatment" binding:"required"`
	Note      string `json:"note"`
}

// addTreatmentEntry appends a visit record to the patient's treatment
// history. The acting dentist is taken from the session, not the body.
func (server *Server) addTreatmentEntry(ctx *gin.Context) {
	var req addTreatmentEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	dentist := authenticatedUser(ctx)
	entry := firedb.TreatmentEntry{
		Date:        req.Date,
		Treatment:   req.Treatment,
		DentistID:   dentist.ID,
		DentistName: dentist.FullName,
		Note:        req.Note,
		CreatedAt:   time.Now(),
	}

	if err := server.store.AddTreatmentEntry(ctx, ctx.Param("id"), entry); err != nil {
		if errors.Is(err, firedb.ErrDocumentNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}

		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

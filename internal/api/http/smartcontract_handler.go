package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"wegorent-backend/internal/contract"
	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/service"
)

type SmartContractHandler struct {
	smartSvc service.SmartContractService
}

func NewSmartContractHandler(smartSvc service.SmartContractService) *SmartContractHandler {
	return &SmartContractHandler{smartSvc: smartSvc}
}

type smartContractRequest struct {
	contractRequest

	TVA        string `json:"tva"`
	StayTax    string `json:"stay_tax"`
	OtherTaxes string `json:"other_taxes"`

	TankLevel     int32                `json:"tank_level"`
	Insurance     domain.InsuranceInfo `json:"insurance"`
	Damages       []domain.Damage      `json:"damages,omitempty"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	CardInfo      *domain.CardInfo     `json:"card_info,omitempty"`
	ChequeInfo    *domain.ChequeInfo   `json:"cheque_info,omitempty"`
	Driver        *domain.DriverInfo   `json:"driver,omitempty"`
	Notes         string               `json:"notes"`
}

func (req smartContractRequest) terms() contract.SmartTerms {
	return contract.SmartTerms{
		TVA:           req.TVA,
		StayTax:       req.StayTax,
		OtherTaxes:    req.OtherTaxes,
		TankLevel:     req.TankLevel,
		Insurance:     req.Insurance,
		Damages:       req.Damages,
		PaymentMethod: req.PaymentMethod,
		CardInfo:      req.CardInfo,
		ChequeInfo:    req.ChequeInfo,
		Driver:        req.Driver,
		Notes:         req.Notes,
	}
}

func (h *SmartContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req smartContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	sc, err := h.smartSvc.CreateSmartContract(r.Context(), partnerIDFrom(r), req.draft(), req.terms())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, sc)
}

func (h *SmartContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	sc, err := h.smartSvc.GetSmartContract(r.Context(), pathID(r), partnerIDFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sc)
}

type smartContractListResponse struct {
	Contracts []domain.SmartContract `json:"contracts"`
	Total     int32                  `json:"total"`
}

func (h *SmartContractHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	contracts, total, err := h.smartSvc.ListSmartContracts(r.Context(), partnerIDFrom(r), status, int32(page), int32(pageSize))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, smartContractListResponse{Contracts: contracts, Total: total})
}

func (h *SmartContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req smartContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	sc, err := h.smartSvc.UpdateSmartContract(r.Context(), pathID(r), partnerIDFrom(r), req.draft(), req.terms())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sc)
}

func (h *SmartContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.smartSvc.DeleteSmartContract(r.Context(), pathID(r), partnerIDFrom(r)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SmartContractHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.smartSvc.UpdateSmartContractStatus(r.Context(), pathID(r), partnerIDFrom(r), req.Status); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

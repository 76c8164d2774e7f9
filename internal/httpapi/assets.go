package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/siambooks/siambooks/internal/model"
)

type registerAssetRequest struct {
	Name            string          `json:"name" validate:"required"`
	PurchaseDate    string          `json:"purchase_date" validate:"required"`
	Cost            decimal.Decimal `json:"cost"`
	Method          string          `json:"depreciation_method" validate:"required,oneof='Straight Line' 'Diminishing Value'"`
	UsefulLifeYears int             `json:"useful_life_years"`
	Department      string          `json:"department"`
}

type recordDepreciationRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type depreciationView struct {
	AssetID   string          `json:"asset_id"`
	Monthly   decimal.Decimal `json:"monthly_depreciation"`
	BookValue decimal.Decimal `json:"book_value"`
}

type assetReportLineView struct {
	AssetID                 string          `json:"asset_id"`
	Name                    string          `json:"name"`
	Cost                    decimal.Decimal `json:"cost"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulated_depreciation"`
	BookValue               decimal.Decimal `json:"book_value"`
}

func (s *Server) mountAssetRoutes(r chi.Router) {
	r.Route("/assets", func(r chi.Router) {
		r.Get("/", s.handleListAssets)
		r.Post("/", s.handleRegisterAsset)
		r.Get("/report", s.handleAssetReport)
		r.Get("/{id}", s.handleGetAsset)
		r.Get("/{id}/depreciation", s.handleMonthlyDepreciation)
		r.Post("/{id}/depreciation", s.handleRecordDepreciation)
	})
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	all := s.services.Assets.Assets()
	out := make([]assetView, 0, len(all))
	for _, a := range all {
		out = append(out, toAssetView(a))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRegisterAsset(w http.ResponseWriter, r *http.Request) {
	var req registerAssetRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}
	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	asset, err := s.services.Assets.RegisterAsset(req.Name, purchaseDate, req.Cost, model.DepreciationMethod(req.Method), req.UsefulLifeYears, req.Department)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toAssetView(asset))
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	asset, ok := s.services.Assets.Asset(id)
	if !ok {
		s.renderError(w, r, notFound("asset", id))
		return
	}
	s.writeJSON(w, http.StatusOK, toAssetView(asset))
}

func (s *Server) handleMonthlyDepreciation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	monthly, err := s.services.Assets.MonthlyDepreciation(id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	bookValue, err := s.services.Assets.BookValue(id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, depreciationView{AssetID: id, Monthly: monthly, BookValue: bookValue})
}

func (s *Server) handleRecordDepreciation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req recordDepreciationRequest
	if err := s.decode(r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	if err := s.services.Assets.RecordDepreciation(id, req.Amount); err != nil {
		s.renderError(w, r, err)
		return
	}
	asset, ok := s.services.Assets.Asset(id)
	if !ok {
		s.renderError(w, r, notFound("asset", id))
		return
	}
	s.writeJSON(w, http.StatusOK, toAssetView(asset))
}

func (s *Server) handleAssetReport(w http.ResponseWriter, r *http.Request) {
	lines := s.services.Assets.Report()
	out := make([]assetReportLineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, assetReportLineView{
			AssetID:                 l.AssetID,
			Name:                    l.Name,
			Cost:                    l.Cost,
			AccumulatedDepreciation: l.AccumulatedDepreciation,
			BookValue:               l.BookValue,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

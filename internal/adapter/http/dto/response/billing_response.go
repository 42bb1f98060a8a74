package response

import "kaenpro_motors/internal/usecase"

type ArrearsSummaryResponse struct {
	TotalOutstanding  float64 `json:"total_outstanding"`
	DebtorCount       int     `json:"debtor_count"`
	MeanDaysInArrears int     `json:"mean_days_in_arrears"`
}

func FromArrearsSummary(s usecase.ArrearsSummary) ArrearsSummaryResponse {
	return ArrearsSummaryResponse{
		TotalOutstanding:  s.TotalOutstanding,
		DebtorCount:       s.DebtorCount,
		MeanDaysInArrears: s.MeanDaysInArrears,
	}
}

// CollectionMessageResponse packages the generated escalation text together
// with the chat deep link; actually opening the link is up to the caller.
type CollectionMessageResponse struct {
	Level        string `json:"level"`
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
}

type InventorySummaryResponse struct {
	CriticalCount int     `json:"critical_count"`
	TotalValue    float64 `json:"total_value"`
}

func FromInventorySummary(s usecase.InventorySummary) InventorySummaryResponse {
	return InventorySummaryResponse{
		CriticalCount: s.CriticalCount,
		TotalValue:    s.TotalValue,
	}
}

type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

package jobs

import (
	"context"
	"time"

	"wegorent-backend/internal/domain"
	"wegorent-backend/internal/logger"
)

// SendReturnReminders notifies agencies about active contracts due back
// within the next 24 hours. Contract status is never changed here; closing
// a rental is always an operator decision.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		contracts, err := jr.store.ListDueBack(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("Failed to list contracts due back", "error", err)
			return
		}

		sent := 0
		for _, c := range contracts {
			partner, err := jr.store.PartnerRepository.GetByID(ctx, c.PartnerID)
			if err != nil {
				logger.Error("Failed to load partner for return reminder", "partner_id", c.PartnerID, "error", err)
				continue
			}
			err = jr.services.Email.SendReturnReminder(ctx, partner.Email, partner.CompanyName, c.VehicleInfo.Name, c.RentalInfo.EndDateTime)
			if err != nil {
				logger.Error("Failed to send return reminder", "contract_id", c.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent return reminders", "due", len(contracts), "sent", sent)
	})
}

// SendInsuranceExpiryReminders notifies agencies about vehicles whose
// insurance expires within the next 30 days.
func (jr *JobRunner) SendInsuranceExpiryReminders() {
	jr.runWithRecovery("SendInsuranceExpiryReminders", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		vehicles, err := jr.store.ListWithInsuranceEnding(ctx, now, now.AddDate(0, 0, 30))
		if err != nil {
			logger.Error("Failed to list vehicles with expiring insurance", "error", err)
			return
		}

		sent := 0
		for _, v := range vehicles {
			if v.InsuranceEnd == nil {
				continue
			}
			partner, err := jr.store.PartnerRepository.GetByID(ctx, v.PartnerID)
			if err != nil {
				logger.Error("Failed to load partner for insurance reminder", "partner_id", v.PartnerID, "error", err)
				continue
			}
			err = jr.services.Email.SendInsuranceExpiryReminder(ctx, partner.Email, partner.CompanyName, v.Name, *v.InsuranceEnd)
			if err != nil {
				logger.Error("Failed to send insurance reminder", "vehicle_id", v.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent insurance expiry reminders", "expiring", len(vehicles), "sent", sent)
	})
}

// SendRoadTaxNotices notifies agencies about vehicles with the current
// fiscal year's road tax still unpaid. Years outside the tracked range are
// skipped entirely.
func (jr *JobRunner) SendRoadTaxNotices() {
	jr.runWithRecovery("SendRoadTaxNotices", func() {
		ctx := context.Background()
		year := time.Now().UTC().Year()
		if year < 2026 || year > 2029 {
			logger.Info("No road tax flag tracked for current year", "year", year)
			return
		}

		vehicles, err := jr.store.ListWithUnpaidRoadTax(ctx, year)
		if err != nil {
			logger.Error("Failed to list vehicles with unpaid road tax", "error", err)
			return
		}

		sent := 0
		for _, v := range vehicles {
			partner, err := jr.store.PartnerRepository.GetByID(ctx, v.PartnerID)
			if err != nil {
				logger.Error("Failed to load partner for road tax notice", "partner_id", v.PartnerID, "error", err)
				continue
			}
			if partner.Status != domain.PartnerStatusActive {
				continue
			}
			err = jr.services.Email.SendRoadTaxNotice(ctx, partner.Email, partner.CompanyName, v.Name, year)
			if err != nil {
				logger.Error("Failed to send road tax notice", "vehicle_id", v.ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent road tax notices", "unpaid", len(vehicles), "sent", sent)
	})
}

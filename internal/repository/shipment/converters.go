package shipment

import "shipping/internal/entities"

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	shipmentEntity := &entities.Shipment{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Type:          entities.ShipmentType(s.Type),
		Status:        entities.ShipmentStatusType(s.Status),
		Sender:        toPartyDomain(s.Sender),
		Recipient:     toPartyDomain(s.Recipient),
		Pickup:        entities.Pickup(s.Pickup),
		Insurance:     toInsuranceDomain(s.Insurance),
		Cost:          entities.Cost(s.Cost),
		Payment:       toPaymentDomain(s.Payment),
		IsDraft:       s.IsDraft,
		LastSavedStep: s.LastSavedStep,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.TrackingNumber != nil {
		shipmentEntity.TrackingNumber = *s.TrackingNumber
	}

	shipmentEntity.Delivery = entities.Delivery{
		EstimatedDate: s.Delivery.EstimatedDate,
		ActualDate:    s.Delivery.ActualDate,
		Options:       s.Delivery.Options,
	}

	for _, p := range s.Packages {
		shipmentEntity.Packages = append(shipmentEntity.Packages, entities.Package{
			Type:         entities.PackageType(p.Type),
			Weight:       p.Weight,
			Dimensions:   entities.Dimensions(p.Dimensions),
			IsFragile:    p.IsFragile,
			IsPerishable: p.IsPerishable,
			IsHazardous:  p.IsHazardous,
		})
	}
	for _, e := range s.Timeline {
		shipmentEntity.Timeline = append(shipmentEntity.Timeline, entities.TimelineEntry{
			Status:      entities.ShipmentStatusType(e.Status),
			Location:    e.Location,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}

	return shipmentEntity
}

func FromDomain(s *entities.Shipment) *ShipmentDB {
	if s == nil {
		return nil
	}

	shipmentDB := &ShipmentDB{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Type:          s.Type.String(),
		Status:        s.Status.String(),
		Sender:        fromPartyDomain(s.Sender),
		Recipient:     fromPartyDomain(s.Recipient),
		Pickup:        PickupDoc(s.Pickup),
		Insurance:     InsuranceDoc{Type: s.Insurance.Type.String(), Coverage: s.Insurance.Coverage},
		Cost:          CostDoc(s.Cost),
		Payment:       fromPaymentDomain(s.Payment),
		IsDraft:       s.IsDraft,
		LastSavedStep: s.LastSavedStep,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.TrackingNumber != "" {
		trackingNumber := s.TrackingNumber
		shipmentDB.TrackingNumber = &trackingNumber
	}

	shipmentDB.Delivery = DeliveryDoc{
		EstimatedDate: s.Delivery.EstimatedDate,
		ActualDate:    s.Delivery.ActualDate,
		Options:       s.Delivery.Options,
	}

	// jsonb columns are NOT NULL, empty slices are stored as []
	shipmentDB.Packages = make([]PackageDoc, 0, len(s.Packages))
	for _, p := range s.Packages {
		shipmentDB.Packages = append(shipmentDB.Packages, PackageDoc{
			Type:         p.Type.String(),
			Weight:       p.Weight,
			Dimensions:   DimensionsDoc(p.Dimensions),
			IsFragile:    p.IsFragile,
			IsPerishable: p.IsPerishable,
			IsHazardous:  p.IsHazardous,
		})
	}
	shipmentDB.Timeline = make([]TimelineEntryDoc, 0, len(s.Timeline))
	for _, e := range s.Timeline {
		shipmentDB.Timeline = append(shipmentDB.Timeline, TimelineEntryDoc{
			Status:      e.Status.String(),
			Location:    e.Location,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}

	return shipmentDB
}

func toPartyDomain(p PartyDoc) entities.Party {
	return entities.Party{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: entities.Address(p.Address),
	}
}

func fromPartyDomain(p entities.Party) PartyDoc {
	return PartyDoc{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: AddressDoc(p.Address),
	}
}

func toInsuranceDomain(i InsuranceDoc) entities.Insurance {
	return entities.Insurance{
		Type:     entities.InsuranceType(i.Type),
		Coverage: i.Coverage,
	}
}

func toPaymentDomain(p PaymentDoc) entities.Payment {
	return entities.Payment{
		Status:          entities.PaymentStatusType(p.Status),
		Method:          p.Method,
		Amount:          p.Amount,
		BankDetails:     entities.BankDetails(p.BankDetails),
		CreatedAt:       p.CreatedAt,
		VerifiedAt:      p.VerifiedAt,
		VerifiedBy:      p.VerifiedBy,
		Notes:           p.Notes,
		RejectionReason: p.RejectionReason,
		Refunded:        p.Refunded,
		RefundedAt:      p.RefundedAt,
		RefundedBy:      p.RefundedBy,
		RefundReason:    p.RefundReason,
		RefundAmount:    p.RefundAmount,
	}
}

func fromPaymentDomain(p entities.Payment) PaymentDoc {
	return PaymentDoc{
		Status:          p.Status.String(),
		Method:          p.Method,
		Amount:          p.Amount,
		BankDetails:     BankDetailsDoc(p.BankDetails),
		CreatedAt:       p.CreatedAt,
		VerifiedAt:      p.VerifiedAt,
		VerifiedBy:      p.VerifiedBy,
		Notes:           p.Notes,
		RejectionReason: p.RejectionReason,
		Refunded:        p.Refunded,
		RefundedAt:      p.RefundedAt,
		RefundedBy:      p.RefundedBy,
		RefundReason:    p.RefundReason,
		RefundAmount:    p.RefundAmount,
	}
}

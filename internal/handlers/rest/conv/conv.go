// Package conv maps shipment entities to and from their wire DTOs. The
// shipment aggregate is wide enough that every endpoint shares one mapping.
package conv

import (
	"shipping/internal/entities"
	"shipping/internal/generated/dto"
)

func ToShipmentDTO(s *entities.Shipment) dto.Shipment {
	shipmentDTO := dto.Shipment{
		ID:             s.ID,
		OwnerID:        s.OwnerID,
		TrackingNumber: s.TrackingNumber,
		Type:           s.Type.String(),
		Status:         s.Status.String(),
		Sender:         toPartyDTO(s.Sender),
		Recipient:      toPartyDTO(s.Recipient),
		Pickup:         dto.Pickup(s.Pickup),
		Insurance:      dto.Insurance{Type: s.Insurance.Type.String(), Coverage: s.Insurance.Coverage},
		Cost:           dto.Cost(s.Cost),
		Payment:        toPaymentDTO(s.Payment),
		IsDraft:        s.IsDraft,
		LastSavedStep:  s.LastSavedStep,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}

	if !s.Delivery.EstimatedDate.IsZero() {
		estimated := s.Delivery.EstimatedDate
		shipmentDTO.Delivery.EstimatedDate = &estimated
	}
	shipmentDTO.Delivery.ActualDate = s.Delivery.ActualDate
	shipmentDTO.Delivery.Options = s.Delivery.Options

	shipmentDTO.Packages = make([]dto.Package, 0, len(s.Packages))
	for _, p := range s.Packages {
		shipmentDTO.Packages = append(shipmentDTO.Packages, dto.Package{
			Type:         p.Type.String(),
			Weight:       p.Weight,
			Dimensions:   dto.Dimensions(p.Dimensions),
			IsFragile:    p.IsFragile,
			IsPerishable: p.IsPerishable,
			IsHazardous:  p.IsHazardous,
		})
	}

	shipmentDTO.Timeline = make([]dto.TimelineEntry, 0, len(s.Timeline))
	for _, e := range s.Timeline {
		shipmentDTO.Timeline = append(shipmentDTO.Timeline, dto.TimelineEntry{
			Status:      e.Status.String(),
			Location:    e.Location,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}

	return shipmentDTO
}

func ToShipmentModify(in dto.ShipmentCreate) entities.ShipmentModify {
	modify := entities.ShipmentModify{
		OwnerID:       in.OwnerID,
		IsDraft:       in.IsDraft,
		LastSavedStep: in.LastSavedStep,
	}

	if in.Type != nil {
		shipmentType := entities.ShipmentType(*in.Type)
		modify.Type = &shipmentType
	}
	if in.Sender != nil {
		sender := toPartyEntity(*in.Sender)
		modify.Sender = &sender
	}
	if in.Recipient != nil {
		recipient := toPartyEntity(*in.Recipient)
		modify.Recipient = &recipient
	}
	if in.Packages != nil {
		packages := ToPackageEntities(*in.Packages)
		modify.Packages = &packages
	}
	if in.Pickup != nil {
		pickup := entities.Pickup(*in.Pickup)
		modify.Pickup = &pickup
	}
	if in.Delivery != nil {
		delivery := entities.Delivery{Options: in.Delivery.Options}
		modify.Delivery = &delivery
	}
	if in.Insurance != nil {
		insurance := entities.Insurance{
			Type:     entities.InsuranceType(in.Insurance.Type),
			Coverage: in.Insurance.Coverage,
		}
		modify.Insurance = &insurance
	}

	return modify
}

func ToPackageEntities(in []dto.Package) []entities.Package {
	packages := make([]entities.Package, 0, len(in))
	for _, p := range in {
		packages = append(packages, entities.Package{
			Type:         entities.PackageType(p.Type),
			Weight:       p.Weight,
			Dimensions:   entities.Dimensions(p.Dimensions),
			IsFragile:    p.IsFragile,
			IsPerishable: p.IsPerishable,
			IsHazardous:  p.IsHazardous,
		})
	}
	return packages
}

func ToPaymentStatusDTO(p *entities.PaymentProjection) dto.PaymentStatus {
	return dto.PaymentStatus{
		ShipmentID: p.ShipmentID,
		CostTotal:  p.CostTotal,
		Payment: dto.Payment{
			Status:          p.Status.String(),
			Method:          p.Method,
			Amount:          p.Amount,
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
		},
	}
}

func toPartyDTO(p entities.Party) dto.Party {
	return dto.Party{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: dto.Address(p.Address),
	}
}

func toPartyEntity(p dto.Party) entities.Party {
	return entities.Party{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: entities.Address(p.Address),
	}
}

func toPaymentDTO(p entities.Payment) dto.Payment {
	return dto.Payment{
		Status:          p.Status.String(),
		Method:          p.Method,
		Amount:          p.Amount,
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

package firestore

import (
	"time"

	"lunchradar/internal/domain/entity"
)

const (
	likesCollection      = "likes"
	selectionsCollection = "selections"
)

type likeDocument struct {
	UserID       string    `firestore:"userId"`
	RestaurantID string    `firestore:"restaurantId"`
	CreatedAt    time.Time `firestore:"createdAt"`
}

type selectionDocument struct {
	UserID            string    `firestore:"userId"`
	Day               string    `firestore:"day"`
	RestaurantID      string    `firestore:"restaurantId"`
	RestaurantName    string    `firestore:"restaurantName"`
	RestaurantAddress string    `firestore:"restaurantAddress"`
	UpdatedAt         time.Time `firestore:"updatedAt"`
}

func fromLikeDomain(like *entity.Like) likeDocument {
	return likeDocument{
		UserID:       like.UserID,
		RestaurantID: like.RestaurantID,
		CreatedAt:    like.CreatedAt,
	}
}

func fromSelectionDomain(selection *entity.Selection) selectionDocument {
	return selectionDocument{
		UserID:            selection.UserID,
		Day:               selection.Day,
		RestaurantID:      selection.RestaurantID,
		RestaurantName:    selection.RestaurantName,
		RestaurantAddress: selection.RestaurantAddress,
		UpdatedAt:         selection.UpdatedAt,
	}
}

func (d selectionDocument) toDomain() *entity.Selection {
	return &entity.Selection{
		UserID:            d.UserID,
		Day:               d.Day,
		RestaurantID:      d.RestaurantID,
		RestaurantName:    d.RestaurantName,
		RestaurantAddress: d.RestaurantAddress,
		UpdatedAt:         d.UpdatedAt,
	}
}

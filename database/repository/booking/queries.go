package bookingRepo

import (
	"fmt"
	"time"

	"handyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activeSlotFilter matches bookings that currently occupy the given slot.
func activeSlotFilter(serviceID string, date time.Time) bson.M {
	return bson.M{
		"service_id": serviceID,
		"date":       date,
		"status":     bson.M{"$in": models.ActiveBookingStatuses},
	}
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// HasActiveBooking reports whether an active booking occupies (serviceID, date).
func (r *MongoBookingRepo) HasActiveBooking(serviceID string, date time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, activeSlotFilter(serviceID, date))
	if err != nil {
		return false, fmt.Errorf("failed to check slot for service %s: %w", serviceID, err)
	}
	return count > 0, nil
}

// GetByUser retrieves all bookings made by a customer, newest first.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	return r.find(bson.M{"user_id": userID})
}

// GetByProvider retrieves all bookings against a provider's services, newest first.
func (r *MongoBookingRepo) GetByProvider(providerID string) ([]models.Booking, error) {
	return r.find(bson.M{"provider_id": providerID})
}

// GetAll retrieves every booking, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.find(bson.M{})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

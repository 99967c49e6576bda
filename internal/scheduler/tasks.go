package scheduler

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TaskAdvertiserSubscriptionExpiry = "advertisers.subscription.expiry"

const TaskVoucherClaimsPurge = "vouchers.claims.purge"

type SubscriptionExpiryPayload struct {
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

type ClaimsPurgePayload struct {
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

func NewSubscriptionExpiryTask(payload SubscriptionExpiryPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAdvertiserSubscriptionExpiry, data), nil
}

func ParseSubscriptionExpiryPayload(task *asynq.Task) (SubscriptionExpiryPayload, error) {
	var payload SubscriptionExpiryPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return SubscriptionExpiryPayload{}, err
	}
	return payload, nil
}

func NewClaimsPurgeTask(payload ClaimsPurgePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskVoucherClaimsPurge, data), nil
}

func ParseClaimsPurgePayload(task *asynq.Task) (ClaimsPurgePayload, error) {
	var payload ClaimsPurgePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ClaimsPurgePayload{}, err
	}
	return payload, nil
}

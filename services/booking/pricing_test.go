package booking

import (
	"errors"
	"testing"

	"pawhub/models"
)

func TestComputeTotal(t *testing.T) {
	total, err := ComputeTotal(500, 100)
	if err != nil {
		t.Fatalf("ComputeTotal failed: %v", err)
	}
	if total != 600 {
		t.Errorf("expected 600, got %v", total)
	}

	total, err = ComputeTotal(250, 0)
	if err != nil || total != 250 {
		t.Errorf("expected 250, got %v (err %v)", total, err)
	}
}

func TestComputeTotalRejectsNegatives(t *testing.T) {
	var verr *models.ValidationError
	if _, err := ComputeTotal(-1, 0); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for negative price, got %v", err)
	}
	if _, err := ComputeTotal(100, -1); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError for negative charges, got %v", err)
	}
}

func TestPaymentLifecycle(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newService(repo)
	seed(repo, "b1", models.StatusCompleted)

	b, err := svc.SetPaymentStatus(provider, "b1", models.PaymentPaid)
	if err != nil {
		t.Fatalf("pending->paid failed: %v", err)
	}
	if b.Pricing.PaymentStatus != models.PaymentPaid {
		t.Errorf("expected paid, got %s", b.Pricing.PaymentStatus)
	}

	b, err = svc.SetPaymentStatus(provider, "b1", models.PaymentRefunded)
	if err != nil {
		t.Fatalf("paid->refunded failed: %v", err)
	}
	if b.Pricing.PaymentStatus != models.PaymentRefunded {
		t.Errorf("expected refunded, got %s", b.Pricing.PaymentStatus)
	}
}

func TestRefundBeforePayment(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newService(repo)
	seed(repo, "b1", models.StatusCompleted)

	_, err := svc.SetPaymentStatus(provider, "b1", models.PaymentRefunded)
	var terr *models.InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if terr.From != string(models.PaymentPending) || terr.To != string(models.PaymentRefunded) {
		t.Errorf("expected pending->refunded in error, got %s->%s", terr.From, terr.To)
	}
	if repo.bookings["b1"].Pricing.PaymentStatus != models.PaymentPending {
		t.Error("rejected payment transition must leave the flag unchanged")
	}
}

func TestPaymentBackwards(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newService(repo)
	b := seed(repo, "b1", models.StatusCompleted)
	b.Pricing.PaymentStatus = models.PaymentPaid

	var terr *models.InvalidTransitionError
	if _, err := svc.SetPaymentStatus(provider, "b1", models.PaymentPending); !errors.As(err, &terr) {
		t.Fatalf("expected InvalidTransitionError for paid->pending, got %v", err)
	}

	b.Pricing.PaymentStatus = models.PaymentRefunded
	if _, err := svc.SetPaymentStatus(provider, "b1", models.PaymentPaid); !errors.As(err, &terr) {
		t.Fatalf("expected InvalidTransitionError for refunded->paid, got %v", err)
	}
}

func TestPaymentUnknownStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newService(repo)
	seed(repo, "b1", models.StatusCompleted)

	_, err := svc.SetPaymentStatus(provider, "b1", "settled")
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPaymentScopedToBusiness(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newService(repo)
	seed(repo, "b1", models.StatusCompleted)

	_, err := svc.SetPaymentStatus(owner, "b1", models.PaymentPaid)
	var nferr *models.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError for pet owner actor, got %v", err)
	}
}

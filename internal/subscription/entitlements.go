package subscription

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ListingsRefreshMonths = 3
	ContactsRefreshMonths = 9
)

type Feature string

const (
	FeatureAI               Feature = "ai"
	FeatureAIInsights       Feature = "ai_insights"
	FeatureVirtual360       Feature = "virtual_360"
	FeatureVirtualTour      Feature = "virtual_tour"
	FeatureFeatured         Feature = "featured"
	FeatureTopFeatured      Feature = "top_featured"
	FeatureHomePageFeatured Feature = "home_page_featured"
	FeatureCustomerCare     Feature = "customer_care"
)

var planLevels = map[PlanType]int{
	PlanFree:     0,
	PlanBasic:    1,
	PlanStandard: 2,
	PlanPremium:  3,
	PlanBoss:     4,
}

// Plans in ascending order.
var Plans = []PlanType{PlanFree, PlanBasic, PlanStandard, PlanPremium, PlanBoss}

var UserTypes = []UserType{UserTypeOwner, UserTypeDealer, UserTypeBuyer}

var listingTotals = map[UserType]map[PlanType]int{
	UserTypeOwner: {
		PlanFree:     2,
		PlanBasic:    4,
		PlanStandard: 8,
		PlanPremium:  15,
	},
	UserTypeDealer: {
		PlanFree:     1,
		PlanBasic:    4,
		PlanStandard: 8,
		PlanPremium:  15,
	},
}

const buyerFreeContacts = 10

// Buyer boss sub-tiers keyed by price in whole rupees.
var buyerBossContacts = map[int64]int{
	1000:  10,
	2000:  20,
	10000: 100,
}

// BuyerBossPrices lists the accepted boss price points for buyers.
var BuyerBossPrices = []int64{1000, 2000, 10000}

// accessRule grants a feature when the plan is listed and, if userTypes is
// non-empty, the user type is listed too.
type accessRule struct {
	plans     []PlanType
	userTypes []UserType
}

func (r accessRule) allows(userType UserType, planType PlanType) bool {
	if !slices.Contains(r.plans, planType) {
		return false
	}
	return len(r.userTypes) == 0 || slices.Contains(r.userTypes, userType)
}

var (
	listers   = []UserType{UserTypeOwner, UserTypeDealer}
	paidPlans = []PlanType{PlanBasic, PlanStandard, PlanPremium, PlanBoss}
)

var featureRules = map[Feature]accessRule{
	FeatureAI:               {plans: []PlanType{PlanStandard, PlanPremium}, userTypes: listers},
	FeatureAIInsights:       {plans: []PlanType{PlanStandard, PlanPremium}, userTypes: listers},
	FeatureVirtual360:       {plans: paidPlans},
	FeatureVirtualTour:      {plans: []PlanType{PlanBasic, PlanStandard, PlanPremium}, userTypes: listers},
	FeatureFeatured:         {plans: paidPlans},
	FeatureTopFeatured:      {plans: []PlanType{PlanStandard, PlanPremium}, userTypes: listers},
	FeatureHomePageFeatured: {plans: []PlanType{PlanPremium}},
	FeatureCustomerCare:     {plans: []PlanType{PlanPremium}},
}

type Entitlements struct {
	ListingsTotal       int        `json:"listings_total"`
	ContactsTotal       int        `json:"contacts_total"`
	Features            Features   `json:"features"`
	ListingsRefreshDate *time.Time `json:"listings_refresh_date,omitempty"`
	ContactsRefreshDate *time.Time `json:"contacts_refresh_date,omitempty"`
}

// ComputeEntitlements derives quotas, feature flags and refresh dates from
// the user type, plan and price. It has no side effects.
func ComputeEntitlements(userType UserType, planType PlanType, price decimal.Decimal, now time.Time) Entitlements {
	e := Entitlements{
		ListingsTotal: ListingsTotal(userType, planType),
		ContactsTotal: ContactsTotal(userType, planType, price),
		Features:      ComputeFeatures(userType, planType),
	}

	if planType == PlanFree {
		refresh := now.AddDate(0, ListingsRefreshMonths, 0)
		e.ListingsRefreshDate = &refresh

		if userType == UserTypeBuyer {
			refresh := now.AddDate(0, ContactsRefreshMonths, 0)
			e.ContactsRefreshDate = &refresh
		}
	}

	return e
}

func ListingsTotal(userType UserType, planType PlanType) int {
	return listingTotals[userType][planType]
}

// ContactsTotal is only non-zero for buyers on free, or on boss at one of
// the fixed price points.
func ContactsTotal(userType UserType, planType PlanType, price decimal.Decimal) int {
	if userType != UserTypeBuyer {
		return 0
	}
	switch planType {
	case PlanFree:
		return buyerFreeContacts
	case PlanBoss:
		if !price.IsInteger() {
			return 0
		}
		return buyerBossContacts[price.IntPart()]
	default:
		return 0
	}
}

func ComputeFeatures(userType UserType, planType PlanType) Features {
	allowed := func(f Feature) bool {
		return featureRules[f].allows(userType, planType)
	}
	return Features{
		AI:               allowed(FeatureAI),
		AIInsights:       allowed(FeatureAIInsights),
		Virtual360:       allowed(FeatureVirtual360),
		VirtualTour:      allowed(FeatureVirtualTour),
		Featured:         allowed(FeatureFeatured),
		TopFeatured:      allowed(FeatureTopFeatured),
		HomePageFeatured: allowed(FeatureHomePageFeatured),
		CustomerCare:     allowed(FeatureCustomerCare),
	}
}

func (f Features) Has(feature Feature) bool {
	switch feature {
	case FeatureAI:
		return f.AI
	case FeatureAIInsights:
		return f.AIInsights
	case FeatureVirtual360:
		return f.Virtual360
	case FeatureVirtualTour:
		return f.VirtualTour
	case FeatureFeatured:
		return f.Featured
	case FeatureTopFeatured:
		return f.TopFeatured
	case FeatureHomePageFeatured:
		return f.HomePageFeatured
	case FeatureCustomerCare:
		return f.CustomerCare
	default:
		return false
	}
}

// PlanLevel returns the ordinal of a plan, or -1 when unknown.
func PlanLevel(planType PlanType) int {
	level, ok := planLevels[planType]
	if !ok {
		return -1
	}
	return level
}

// MeetsMinimum reports whether planType is at least minPlan.
func MeetsMinimum(planType, minPlan PlanType) bool {
	level := PlanLevel(planType)
	return level >= 0 && level >= PlanLevel(minPlan)
}

func ValidUserType(userType UserType) bool {
	return slices.Contains(UserTypes, userType)
}

func ValidPlanType(planType PlanType) bool {
	_, ok := planLevels[planType]
	return ok
}

// PlanOffer is one row of the public plan matrix.
type PlanOffer struct {
	UserType      UserType         `json:"user_type"`
	PlanType      PlanType         `json:"plan_type"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	ListingsTotal int              `json:"listings_total"`
	ContactsTotal int              `json:"contacts_total"`
	Features      Features         `json:"features"`
}

// Catalog lists the entitlements of every user type and plan, with one row
// per buyer boss price point.
func Catalog() []PlanOffer {
	var offers []PlanOffer
	for _, ut := range UserTypes {
		for _, pt := range Plans {
			if ut == UserTypeBuyer && pt == PlanBoss {
				for _, p := range BuyerBossPrices {
					price := decimal.NewFromInt(p)
					offers = append(offers, newOffer(ut, pt, &price))
				}
				continue
			}
			offers = append(offers, newOffer(ut, pt, nil))
		}
	}
	return offers
}

func newOffer(userType UserType, planType PlanType, price *decimal.Decimal) PlanOffer {
	p := decimal.Zero
	if price != nil {
		p = *price
	}
	return PlanOffer{
		UserType:      userType,
		PlanType:      planType,
		Price:         price,
		ListingsTotal: ListingsTotal(userType, planType),
		ContactsTotal: ContactsTotal(userType, planType, p),
		Features:      ComputeFeatures(userType, planType),
	}
}

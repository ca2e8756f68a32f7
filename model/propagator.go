package model

import "math"

// TauCoincidenceTol is the tolerance below which two time constants are
// treated as equal. The exact propagator entries for distinct membrane and
// synaptic time constants contain the factor 1/(1/tauM - 1/tauSyn); as the
// constants approach each other the expressions become removable
// singularities, so within this tolerance the limit forms are substituted
// instead of dividing by near-zero.
const TauCoincidenceTol = 1e-7

// DecayFactor returns exp(-h/tau), the exact one-step propagator of a pure
// exponential decay with time constant tau.
func DecayFactor(tau, h float64) float64 {
	return math.Exp(-h / tau)
}

// MembraneInputPropagator returns the exact one-step contribution of a
// constant current to the membrane potential: tauM/cM * (1 - exp(-h/tauM)).
func MembraneInputPropagator(tauM, cM, h float64) float64 {
	return -tauM / cM * math.Expm1(-h/tauM)
}

// Propagator31 returns the exact one-step contribution of the synaptic
// current derivative to the membrane potential for an alpha-shaped synapse.
// For coinciding time constants the L'Hôpital limit h²·exp(-h/tau)/(2·cM)
// applies.
func Propagator31(tauSyn, tauM, cM, h float64) float64 {
	if tauConstantsCoincide(tauSyn, tauM) {
		return h * h * math.Exp(-h/tauM) / (2.0 * cM)
	}

	d := 1.0/tauM - 1.0/tauSyn
	eSyn := math.Exp(-h / tauSyn)
	eM := math.Exp(-h / tauM)

	return (h*eSyn/d + (eM-eSyn)/(d*d)) / cM
}

// Propagator32 returns the exact one-step contribution of the synaptic
// current to the membrane potential. For coinciding time constants the limit
// h·exp(-h/tau)/cM applies.
func Propagator32(tauSyn, tauM, cM, h float64) float64 {
	if tauConstantsCoincide(tauSyn, tauM) {
		return h * math.Exp(-h/tauM) / cM
	}

	d := 1.0/tauM - 1.0/tauSyn

	return (math.Exp(-h/tauSyn) - math.Exp(-h/tauM)) / (d * cM)
}

func tauConstantsCoincide(tauSyn, tauM float64) bool {
	return math.Abs(tauSyn-tauM) < TauCoincidenceTol
}

// AlphaPropagators bundles the five propagator entries that advance the
// linear membrane + alpha-synapse subsystem by exactly one step:
//
//	y1' = P11·y1
//	y2' = P21·y1 + P22·y2
//	V'  = P31·y1 + P32·y2 + P33·V + PInput·(I_e + I_stim)
//
// where y1 is the synaptic current derivative, y2 the synaptic current, and
// V the membrane potential relative to rest.
type AlphaPropagators struct {
	P11, P21, P22 float64
	P31, P32, P33 float64
	PInput        float64
}

// AlphaPropagatorsFor computes the entries from the physical constants at
// calibration time.
func AlphaPropagatorsFor(tauM, tauSyn, cM, h float64) AlphaPropagators {
	eSyn := DecayFactor(tauSyn, h)

	return AlphaPropagators{
		P11:    eSyn,
		P21:    h * eSyn,
		P22:    eSyn,
		P31:    Propagator31(tauSyn, tauM, cM, h),
		P32:    Propagator32(tauSyn, tauM, cM, h),
		P33:    DecayFactor(tauM, h),
		PInput: MembraneInputPropagator(tauM, cM, h),
	}
}

// PSCInitialValue returns the increment applied to the synaptic current
// derivative per unit synaptic weight. The alpha kernel e/tauSyn · t ·
// exp(-t/tauSyn) then peaks at exactly the weight's value at t = tauSyn.
func PSCInitialValue(tauSyn float64) float64 {
	return math.E / tauSyn
}

// RefractoryCounts converts a refractory period to a step count, computed
// once at calibration time and counted down in the hot loop.
func RefractoryCounts(tRef, h float64) int64 {
	return int64(math.Round(tRef / h))
}

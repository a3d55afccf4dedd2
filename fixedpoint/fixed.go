/*
Package fixedpoint implements the Q16.16 signed fixed-point representation
shared by membrane potentials, synaptic weights, and plasticity traces
throughout the engine.

# Why fixed-point

A discrete-event neuron simulator that must stay bit-reproducible across
runs, and portable to hosts with no hardware float unit, cannot carry live
floating-point state. Every value that participates in a step — membrane
potential, edge weight, pre/post trace — is a Q16.16 signed 32-bit integer.
Floats only appear at construction time, converting a human-supplied
threshold or weight into its fixed-point form.

# Representation

A Fixed value is a signed 32-bit integer interpreted as value * 2^-16: the
low 16 bits are the fractional part, the remaining 16 (plus sign) are the
integer part.
*/
package fixedpoint

// Fixed is a Q16.16 signed fixed-point number.
type Fixed = int32

// FractionalBits is the number of bits below the binary point.
const FractionalBits = 16

// Scale is 2^FractionalBits, the conversion factor between Fixed and float.
const Scale Fixed = 1 << FractionalBits

// FromFloat truncates x*Scale to a Fixed. Callers must pass finite values;
// behavior for NaN/Inf inputs is platform-defined and not guaranteed by
// this package.
func FromFloat(x float32) Fixed {
	return Fixed(x * float32(Scale))
}

// ToFloat converts a Fixed back to its float32 value.
func ToFloat(x Fixed) float32 {
	return float32(x) / float32(Scale)
}

// Mul multiplies two Fixed values via a 64-bit intermediate product,
// arithmetic-shifting right by FractionalBits before truncating back to
// 32 bits. The final narrowing is allowed to wrap on overflow; callers
// that need saturation around a multiply (plasticity does) must bound
// their inputs or wrap the result in AddSat/SubSat themselves.
func Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> FractionalBits)
}

// AddSat adds two Fixed values, saturating at the int32 range instead of
// wrapping on overflow.
func AddSat(a, b Fixed) Fixed {
	sum := int64(a) + int64(b)
	return clamp64(sum)
}

// SubSat subtracts b from a, saturating at the int32 range instead of
// wrapping on overflow/underflow.
func SubSat(a, b Fixed) Fixed {
	diff := int64(a) - int64(b)
	return clamp64(diff)
}

func clamp64(v int64) Fixed {
	const maxI32 = int64(1<<31 - 1)
	const minI32 = -int64(1 << 31)
	if v > maxI32 {
		return Fixed(maxI32)
	}
	if v < minI32 {
		return Fixed(minI32)
	}
	return Fixed(v)
}

// Clamp restricts x to the inclusive range [lo, hi]. Callers (notably the
// plasticity rule) are responsible for passing lo <= hi.
func Clamp(x, lo, hi Fixed) Fixed {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

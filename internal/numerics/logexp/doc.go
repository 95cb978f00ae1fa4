// Package logexp approximates logarithms, the exponential and powers.
//
// NaturalLog reads the single-precision bit layout of its argument and is
// fast but only accurate to about 4e-4. NaturalLogSeries trades speed for
// full precision. Logarithm and LogarithmWith apply the change of base
// formula on top of either.
package logexp

package utils

// Jalali calendar arithmetic after Birashk's break-year method, the same
// scheme the jalaali reference implementations use. Accurate for the
// whole range a blog will ever see (1178-3178 AP).

var jalaliBreaks = []int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181, 1210,
	1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// ToJalali converts a Gregorian civil date to its Jalali equivalent.
func ToJalali(gy, gm, gd int) (jy, jm, jd int) {
	return d2j(g2d(gy, gm, gd))
}

// ToGregorian converts a Jalali civil date to its Gregorian equivalent.
func ToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	return d2g(j2d(jy, jm, jd))
}

// IsJalaliLeap reports whether the Jalali year has 366 days.
func IsJalaliLeap(jy int) bool {
	leap, _, _ := jalCal(jy)
	return leap == 0
}

// jalCal locates jy between two break years and derives its leap status
// and the Gregorian March day its Farvardin 1 falls on.
func jalCal(jy int) (leap, gy, march int) {
	gy = jy + 621
	leapJ := -14
	jp := jalaliBreaks[0]

	var jump int
	for i := 1; i < len(jalaliBreaks); i++ {
		jb := jalaliBreaks[i]
		jump = jb - jp
		if jy < jb {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jb
	}
	n := jy - jp

	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march = 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	leap = ((n+1)%33 - 1) % 4
	if leap == -1 {
		leap = 4
	}
	return leap, gy, march
}

// g2d maps a Gregorian date to its Julian day number.
func g2d(gy, gm, gd int) int {
	d := (gy+(gm-8)/6+100100)*1461/4 + (153*((gm+9)%12)+2)/5 + gd - 34840408
	return d - (gy+100100+(gm-8)/6)/100*3/4 + 752
}

// d2g maps a Julian day number back to a Gregorian date.
func d2g(jdn int) (gy, gm, gd int) {
	j := 4*jdn + 139361631
	j += (4*jdn+183187720)/146097*3/4*4 - 3908
	i := j%1461/4*5 + 308
	gd = i%153/5 + 1
	gm = i/153%12 + 1
	gy = j/1461 - 100100 + (8-gm)/6
	return gy, gm, gd
}

// j2d maps a Jalali date to its Julian day number.
func j2d(jy, jm, jd int) int {
	_, gy, march := jalCal(jy)
	return g2d(gy, 3, march) + (jm-1)*31 - jm/7*(jm-7) + jd - 1
}

// d2j maps a Julian day number to a Jalali date.
func d2j(jdn int) (jy, jm, jd int) {
	gy, _, _ := d2g(jdn)
	jy = gy - 621
	leap, _, march := jalCal(jy)
	k := jdn - g2d(gy, 3, march)

	if k >= 0 {
		if k <= 185 {
			return jy, 1 + k/31, k%31 + 1
		}
		k -= 186
	} else {
		jy--
		k += 179
		if leap == 1 {
			k++
		}
	}
	return jy, 7 + k/30, k%30 + 1
}

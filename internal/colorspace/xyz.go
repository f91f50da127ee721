package colorspace

// Linear RGB <-> CIE XYZ. Every RGB space except ProPhoto is defined against
// the D65 white point; ProPhoto uses D50 and reaches D65 through the
// Bradford-adapted matrices below.

var (
	linSRGBToXYZ = [][]float64{
		{506752.0 / 1228815, 87881.0 / 245763, 12673.0 / 70218},
		{87098.0 / 409605, 175762.0 / 245763, 12673.0 / 175545},
		{7918.0 / 409605, 87881.0 / 737289, 1001167.0 / 1053270},
	}
	xyzToLinSRGB = [][]float64{
		{12831.0 / 3959, -329.0 / 214, -1974.0 / 3959},
		{-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810},
		{705.0 / 12673, -2585.0 / 12673, 705.0 / 667},
	}

	linP3ToXYZ = [][]float64{
		{608311.0 / 1250200, 189793.0 / 714400, 198249.0 / 1000160},
		{35783.0 / 156275, 247089.0 / 357200, 198249.0 / 2500400},
		{0.0 / 1, 32229.0 / 714400, 5220557.0 / 5000800},
	}
	xyzToLinP3 = [][]float64{
		{446124.0 / 178915, -333277.0 / 357830, -72051.0 / 178915},
		{-14852.0 / 17905, 63121.0 / 35810, 423.0 / 17905},
		{11844.0 / 330415, -50337.0 / 660830, 316169.0 / 330415},
	}

	linA98ToXYZ = [][]float64{
		{573536.0 / 994567, 263643.0 / 1420810, 187206.0 / 994567},
		{591459.0 / 1989134, 6239551.0 / 9945670, 374412.0 / 4972835},
		{53769.0 / 1989134, 351524.0 / 4972835, 4929758.0 / 4972835},
	}
	xyzToLinA98 = [][]float64{
		{1829569.0 / 896150, -506331.0 / 896150, -308931.0 / 896150},
		{-851781.0 / 878810, 1648619.0 / 878810, 36519.0 / 878810},
		{16779.0 / 1248040, -147721.0 / 1248040, 1266979.0 / 1248040},
	}

	linRec2020ToXYZ = [][]float64{
		{63426534.0 / 99577255, 20160776.0 / 139408157, 47086771.0 / 278816314},
		{26158966.0 / 99577255, 472592308.0 / 697040785, 8267143.0 / 139408157},
		{0.0 / 1, 19567812.0 / 697040785, 295819943.0 / 278816314},
	}
	xyzToLinRec2020 = [][]float64{
		{30757411.0 / 17917100, -6372589.0 / 17917100, -4539589.0 / 17917100},
		{-19765991.0 / 29648200, 47925759.0 / 29648200, 467509.0 / 29648200},
		{792561.0 / 44930125, -1921689.0 / 44930125, 42328811.0 / 44930125},
	}

	// ProPhoto is relative to D50.
	linProPhotoToXYZD50 = [][]float64{
		{0.7977666449006423, 0.13518129740053308, 0.0313477341283922},
		{0.2880748288194013, 0.711835234241873, 0.00008993693872564},
		{0, 0, 0.8251046025104602},
	}
	xyzD50ToLinProPhoto = [][]float64{
		{1.3457868816471583, -0.25557208737979464, -0.05110186497554526},
		{-0.5446307051249019, 1.5082477428451468, 0.02052744743642139},
		{0, 0, 1.2119675456389452},
	}

	// Bradford chromatic adaptation. The two directions are published
	// separately and are not exact inverses of each other.
	d65ToD50 = [][]float64{
		{1.0479297925449969, 0.022946870601609652, -0.05019226628920524},
		{0.02962780877005599, 0.9904344267538799, -0.017073799063418826},
		{-0.009243040646204504, 0.015055191490298152, 0.7518742814281371},
	}
	d50ToD65 = [][]float64{
		{0.955473421488075, -0.02309845494876471, 0.06325924320057072},
		{-0.0283697093338637, 1.0099953980813041, 0.021041441191917323},
		{0.012314014864481998, -0.020507649298898964, 1.330365926242124},
	}
)

// LinSRGBToXYZ converts linear sRGB to D65 XYZ.
func LinSRGBToXYZ(r, g, b float64) (float64, float64, float64) {
	return transform(linSRGBToXYZ, r, g, b)
}

// XYZToLinSRGB converts D65 XYZ to linear sRGB.
func XYZToLinSRGB(x, y, z float64) (float64, float64, float64) {
	return transform(xyzToLinSRGB, x, y, z)
}

// LinP3ToXYZ converts linear Display P3 to D65 XYZ.
func LinP3ToXYZ(r, g, b float64) (float64, float64, float64) {
	return transform(linP3ToXYZ, r, g, b)
}

// XYZToLinP3 converts D65 XYZ to linear Display P3.
func XYZToLinP3(x, y, z float64) (float64, float64, float64) {
	return transform(xyzToLinP3, x, y, z)
}

// LinA98ToXYZ converts linear Adobe RGB (1998) to D65 XYZ.
func LinA98ToXYZ(r, g, b float64) (float64, float64, float64) {
	return transform(linA98ToXYZ, r, g, b)
}

// XYZToLinA98 converts D65 XYZ to linear Adobe RGB (1998).
func XYZToLinA98(x, y, z float64) (float64, float64, float64) {
	return transform(xyzToLinA98, x, y, z)
}

// LinRec2020ToXYZ converts linear BT.2020 to D65 XYZ.
func LinRec2020ToXYZ(r, g, b float64) (float64, float64, float64) {
	return transform(linRec2020ToXYZ, r, g, b)
}

// XYZToLinRec2020 converts D65 XYZ to linear BT.2020.
func XYZToLinRec2020(x, y, z float64) (float64, float64, float64) {
	return transform(xyzToLinRec2020, x, y, z)
}

// LinProPhotoToXYZD50 converts linear ProPhoto RGB to D50 XYZ.
func LinProPhotoToXYZD50(r, g, b float64) (float64, float64, float64) {
	return transform(linProPhotoToXYZD50, r, g, b)
}

// XYZD50ToLinProPhoto converts D50 XYZ to linear ProPhoto RGB.
func XYZD50ToLinProPhoto(x, y, z float64) (float64, float64, float64) {
	return transform(xyzD50ToLinProPhoto, x, y, z)
}

// D65ToD50 adapts XYZ from the D65 to the D50 white point (Bradford).
func D65ToD50(x, y, z float64) (float64, float64, float64) {
	return transform(d65ToD50, x, y, z)
}

// D50ToD65 adapts XYZ from the D50 to the D65 white point (Bradford).
func D50ToD65(x, y, z float64) (float64, float64, float64) {
	return transform(d50ToD65, x, y, z)
}

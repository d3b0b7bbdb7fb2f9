/*
Copyright © 2018 the glasstone authors.
This file is part of glasstone.

glasstone is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

glasstone is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with glasstone.  If not, see <http://www.gnu.org/licenses/>.
*/

package soviet

// Points digitized from the peak overpressure graphs of Iadernoe oruzhie
// (1987). X values are scaled ground range (m/kT^⅓) and Y values are
// log10 of peak overpressure (kg/cm²). Each pair of slices is one curve for a
// scaled height of burst (20 = 200 m, 12 = 120 m, 7 = 70 m) or for a surface
// burst, with (mach) or without (noMach) a Mach stem.
var (
	machSH20X = []float64{
		1.331, 19.104, 41.226, 63.169, 80.125, 101.245,
		120.583, 139.581, 159.644, 179.461, 201.321, 219.973,
		241.426, 262.938, 283.481, 302.758, 325.245, 344.411,
		366.451, 385.868, 406.185, 421.308, 438.554, 461.104,
		481.968, 502.29, 521.382, 539.832, 560.252, 581.467,
		602.997, 624.007, 644.188, 664.264, 685.195, 701.97,
		719.388, 742.154, 759.153, 782.1, 801.371, 821.661,
		838.498, 859.418, 881.444, 900.283, 918.763, 937.479,
		959.438, 981.26, 998.157, 1018.784, 1036.762, 1058.714,
		1076.708, 1096.315, 1115.931, 1135.326, 1155.808, 1176.399,
		1195.328, 1215.69, 1238.752, 1257.313, 1277.394, 1297.996,
	}
	machSH20Y = []float64{
		0.5523031, 0.54294986, 0.52608067, 0.49927458, 0.46671936, 0.43120286,
		0.38863397, 0.3422252, 0.29534715, 0.24551266, 0.19700474, 0.14952701,
		0.10209052, 0.06145246, 0.015359761, -0.022733787, -0.06198091, -0.09582564,
		-0.13548893, -0.16877033, -0.20134935, -0.22329882, -0.2502637, -0.28066874,
		-0.3080349, -0.3362991, -0.35951856, -0.38090667, -0.4089354, -0.43179828,
		-0.45717457, -0.48412615, -0.5044557, -0.5228787, -0.54363394, -0.5606673,
		-0.5783961, -0.5968795, -0.61261016, -0.6326441, -0.64589155, -0.6635403,
		-0.67366415, -0.6946486, -0.71219826, -0.7235382, -0.74232143, -0.75696194,
		-0.7670039, -0.78515613, -0.7986029, -0.8153086, -0.8268137, -0.838632,
		-0.8507809, -0.86012095, -0.8728952, -0.8827287, -0.8894103, -0.89619625,
		-0.91009486, -0.92081875, -0.928118, -0.93554205, -0.94309515, -0.95078194,
	}
	machSH12X = []float64{
		0.185, 18.063, 40.565, 62.433, 81.175, 100.851,
		118.577, 140.272, 158.86, 179.04, 201.837, 220.533,
		240.193, 261.484, 283.718, 303.67, 324.586, 343.316,
		364.135, 385.013, 406.369, 420.938, 439.419, 460.575,
		481.611, 503.282, 521.93, 539.092, 560.148, 580.711,
		603.393, 625.366, 645.57, 664.924, 682.531, 702.317,
		721.647, 741.642, 761.445, 780.592, 801.867, 822.177,
		840.157, 859.306, 880.964, 899.578, 919.86, 939.25,
		959.39, 981.444, 997.316, 1018.656, 1037.42, 1059.352,
		1077.797, 1096.364, 1115.968, 1135.366, 1155.98, 1177.267,
		1195.852, 1215.355, 1237.331, 1258.569, 1277.98, 1299.745,
	}
	machSH12Y = []float64{
		1.1908078, 1.1579099, 1.0961798, 1.0184091, 0.941064, 0.83569056,
		0.7261565, 0.59128726, 0.4835873, 0.38453263, 0.29336256, 0.22193561,
		0.15198241, 0.08457629, 0.01870051, -0.029188387, -0.07623804, -0.11690664,
		-0.15926675, -0.19859628, -0.23507701, -0.2588484, -0.28903687, -0.3187588,
		-0.35164, -0.38510278, -0.40782323, -0.4341522, -0.46344155, -0.48811665,
		-0.51712644, -0.53910214, -0.5622495, -0.5783961, -0.59859943, -0.61618465,
		-0.6326441, -0.65169513, -0.66554624, -0.6798537, -0.6968039, -0.7144427,
		-0.72815835, -0.7447275, -0.75696194, -0.7695511, -0.78515613, -0.7986029,
		-0.8096683, -0.82390875, -0.83268267, -0.84163755, -0.8507809, -0.86327946,
		-0.8728952, -0.8827287, -0.89279, -0.90309, -0.91009486, -0.924453,
		-0.928118, -0.93930215, -0.9469216, -0.95467705, -0.9665762, -0.97469413,
	}
	machSH7X = []float64{
		43.498, 62.016, 80.472, 102.385, 118.651, 137.123,
		159.124, 178.447, 199.181, 220.241, 240.446, 261.623,
		282.019, 303.128, 324.82, 343.582, 365.69, 386.883,
		407.316, 419.945, 438.6, 459.636, 482.27, 504.212,
		521.759, 541.152, 558.706, 579.852, 604.245, 624.521,
		644.971, 665.257, 683.297, 702.656, 721.246, 740.825,
		758.882, 780.978, 801.944, 821.375, 840.749, 860.018,
		882.071, 901.053, 919.378, 938.86, 960.238, 981.877,
		997.851, 1019.741, 1038.082, 1057.774, 1079.01, 1096.82,
		1116.995, 1135.905, 1156.171, 1178.157, 1197.581, 1216.761,
		1237.352, 1259.419, 1277.991,
	}
	machSH7Y = []float64{
		1.4558951, 1.3268068, 1.1763808, 0.9898501, 0.86093664, 0.72525805,
		0.58782315, 0.46419135, 0.35755375, 0.24944296, 0.1547282, 0.08884456,
		0.026124531, -0.03526908, -0.09691001, -0.13489604, -0.1811146, -0.22257319,
		-0.2620127, -0.28819278, -0.32239303, -0.3555614, -0.3882767, -0.4156688,
		-0.44129145, -0.46597388, -0.49214414, -0.5243288, -0.55284196, -0.5718652,
		-0.5968795, -0.61618465, -0.634512, -0.64975196, -0.66756153, -0.6819367,
		-0.6968039, -0.71669877, -0.73282826, -0.75202674, -0.7670039, -0.7798919,
		-0.79317415, -0.80410033, -0.8153086, -0.8268137, -0.84163755, -0.85387194,
		-0.86327946, -0.8696662, -0.87942606, -0.89279, -0.90309, -0.91364014,
		-0.92081875, -0.93181413, -0.94309515, -0.95078194, -0.9586073, -0.9706162,
		-0.9788107, -0.98716277, -0.9956786,
	}
	noMachSH20X = []float64{
		0.776, 17.542, 39.194, 59.919, 80.395, 98.234,
		120.384, 140.066, 160.045, 180.514, 200.089, 220.68,
		241.361, 262.881, 282.052, 302.272, 319.874, 342.36,
		361.619, 380.321, 401.146, 418.947, 440.827, 460.902,
		480.084, 501.124, 520.191, 541.805, 558.649, 581.106,
		600.363, 618.769, 640.37, 660.45, 680.663, 699.943,
		717.806, 739.608, 759.72, 778.782, 799.109, 819.068,
		838.982, 859.111, 878.461, 898.427, 918.219, 936.807,
		958.894, 978.923, 997.298, 1017.674, 1037.8, 1056.481,
		1077.19, 1098.258, 1118.988, 1137.451, 1158.16, 1178.221,
		1200.057, 1220.432, 1238.064, 1259.942, 1280.013, 1298.179,
	}
	noMachSH20Y = []float64{
		0.47348696, 0.47085133, 0.44916973, 0.40636984, 0.33183205, 0.23426414,
		0.12319806, 0.04257553, -0.026410384, -0.08777796, -0.13018179, -0.17783193,
		-0.21467015, -0.25103715, -0.27736607, -0.30451834, -0.32790214, -0.35066512,
		-0.36653155, -0.38721615, -0.40560743, -0.41793662, -0.4353339, -0.44249278,
		-0.45345733, -0.4596705, -0.47366074, -0.4867824, -0.49894074, -0.5128616,
		-0.5287083, -0.54363394, -0.5590909, -0.57675415, -0.59176004, -0.6055483,
		-0.6216021, -0.63827217, -0.65169513, -0.66554624, -0.6798537, -0.68824613,
		-0.7011469, -0.7144427, -0.73048705, -0.7375489, -0.75448734, -0.7619539,
		-0.7798919, -0.79048496, -0.7986029, -0.8096683, -0.82390875, -0.82973826,
		-0.838632, -0.8507809, -0.86012095, -0.8696662, -0.87614834, -0.88605666,
		-0.89619625, -0.90309, -0.91364014, -0.91721463, -0.924453, -0.93181413,
	}
	noMachSH12X = []float64{
		0.631, 17.577, 39.951, 28.472, 58.118, 78.658,
		97.327, 119.925, 139.845, 160.758, 180.155, 201.174,
		220.079, 240.022, 262.906, 282.311, 300.743, 320.333,
		341.52, 361.346, 381.298, 400.317, 418.635, 439.661,
		459.697, 479.828, 501.458, 520.715, 541.523, 559.59,
		581.485, 600.797, 619.104, 639.911, 660.035, 679.174,
		698.348, 720.035, 740.337, 760.349, 779.427, 800.302,
		818.658, 839.435, 859.027, 878.489, 899.365, 917.382,
		938.439, 957.56, 977.898, 997.32, 1017.29, 1038.069,
		1058.037, 1078.744, 1099.227, 1118.674, 1138.738, 1157.212,
		1178.332, 1200.738, 1219.925, 1239.044, 1259.221, 1279.509,
		1298.87,
	}
	noMachSH12Y = []float64{
		1.1146777, 1.0617163, 0.89641595, 0.9935685, 0.7189167, 0.5682017,
		0.4556061, 0.35506824, 0.27669153, 0.20330492, 0.14113607, 0.08314413,
		0.024895966, -0.024108874, -0.07520399, -0.114073664, -0.1518109, -0.19246496,
		-0.23358716, -0.2700257, -0.3053948, -0.33724216, -0.3635121, -0.38933983,
		-0.41453928, -0.43889862, -0.46344155, -0.47886193, -0.49894074, -0.52143353,
		-0.537602, -0.5590909, -0.57511836, -0.59516627, -0.6090649, -0.627088,
		-0.6401645, -0.653647, -0.66958624, -0.68402964, -0.6968039, -0.7099654,
		-0.71896666, -0.73048705, -0.74714696, -0.7619539, -0.77469075, -0.78515613,
		-0.8013429, -0.8068754, -0.82102305, -0.8268137, -0.83564717, -0.8477116,
		-0.85387194, -0.86012095, -0.87614834, -0.87942606, -0.88605666, -0.89619625,
		-0.90309, -0.91009486, -0.92081875, -0.928118, -0.93554205, -0.94309515,
		-0.9469216,
	}
	noMachSH7X = []float64{
		39.016, 49.999, 58.378, 67.937, 79.137, 98.665,
		107.882, 119.779, 141.147, 153.237, 180.792, 201.757,
		220.338, 241.914, 262.073, 282.716, 303.068, 318.817,
		339.29, 359.974, 381.646, 399.743, 420.145, 440.688,
		460.453, 480.501, 501.541, 519.266, 541.776, 559.521,
		581.203, 601.3, 618.193, 639.057, 660.737, 678.284,
		699.991, 719.077, 740.641, 759.83, 778.266, 799.218,
		820.055, 839.256, 858.756, 878.976, 899.119, 917.695,
		936.99, 958.196, 978.491, 997.668, 1017.739, 1036.856,
		1057.669, 1077.738, 1098.06, 1118.041, 1138.872, 1156.899,
		1179.739, 1199.16, 1220.081, 1239.626, 1260.337, 1281.059,
		1299.434,
	}
	noMachSH7Y = []float64{
		1.4701016, 1.3752978, 1.2849042, 1.0660276, 0.8939836, 0.64157325,
		0.5370631, 0.43743342, 0.30297995, 0.24004978, 0.11193429, 0.044539776,
		-0.015922973, -0.068542145, -0.11804502, -0.15926675, -0.19722629, -0.22767828,
		-0.26440108, -0.3001623, -0.33161408, -0.36151075, -0.3936186, -0.4213608,
		-0.45345733, -0.47495517, -0.49349496, -0.5142786, -0.5346171, -0.55284196,
		-0.5702477, -0.5867002, -0.6055483, -0.61978877, -0.63827217, -0.6556077,
		-0.66958624, -0.6798537, -0.69897, -0.71219826, -0.7235382, -0.7399286,
		-0.75696194, -0.7670039, -0.77728355, -0.79048496, -0.80410033, -0.8096683,
		-0.82102305, -0.83268267, -0.838632, -0.8507809, -0.86012095, -0.86646104,
		-0.8728952, -0.8827287, -0.89619625, -0.90309, -0.9065783, -0.91721463,
		-0.924453, -0.93181413, -0.93930215, -0.94309515, -0.95078194, -0.9586073,
		-0.9665762,
	}
	groundX = []float64{
		66.257, 68.349, 72.247, 72.145, 74.648, 78.78,
		82.873, 90.652, 98.896, 100.0, 130.0, 205.295,
		306.881, 407.898, 507.448, 608.431, 704.076, 807.753,
		907.192, 1007.669, 1109.542, 1202.889, 1308.551, 1405.661,
		1504.885, 1599.907, 1704.178, 1800.224, 1899.995, 1997.408,
		2095.903, 2193.049, 2273.675, 2420.979, 2818.851, 3207.894,
		3609.952, 3992.678, 4402.044, 4807.183, 5205.226,
	}
	groundY = []float64{
		2.0277002, 1.9637926, 1.9058229, 1.847085, 1.7720796, 1.6970462,
		1.5995556, 1.4737351, 1.312135, 1.0265741, 0.7101174, 0.31069332,
		-0.057991948, -0.29929632, -0.4609239, -0.5850267, -0.692504, -0.7798919,
		-0.8569852, -0.924453, -0.9788107, -1.031517, -1.0655016, -1.1023729,
		-1.1487416, -1.1739252, -1.2146702, -1.2441251, -1.2757242, -1.2924298,
		-1.3187587, -1.3467875, -1.3565474, -1.3872161, -1.4685211, -1.5528419,
		-1.6197888, -1.6777807, -1.7212464, -1.769551, -1.79588,
	}
)

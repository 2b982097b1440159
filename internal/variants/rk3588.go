package variants

import "rkpm/internal/domain"

// RK3588 power domain identifiers.
const (
	RK3588NPU     domain.PowerDomain = 8
	RK3588NPUTOP  domain.PowerDomain = 9
	RK3588NPU1    domain.PowerDomain = 10
	RK3588NPU2    domain.PowerDomain = 11
	RK3588GPU     domain.PowerDomain = 12
	RK3588VCodec  domain.PowerDomain = 13
	RK3588RKVDEC0 domain.PowerDomain = 14
	RK3588RKVDEC1 domain.PowerDomain = 15
	RK3588VENC0   domain.PowerDomain = 16
	RK3588VENC1   domain.PowerDomain = 17
	RK3588VDPU    domain.PowerDomain = 21
	RK3588RGA30   domain.PowerDomain = 22
	RK3588AV1     domain.PowerDomain = 23
	RK3588VOP     domain.PowerDomain = 24
	RK3588VO0     domain.PowerDomain = 25
	RK3588VO1     domain.PowerDomain = 26
	RK3588VI      domain.PowerDomain = 27
	RK3588ISP1    domain.PowerDomain = 28
	RK3588FEC     domain.PowerDomain = 29
	RK3588RGA31   domain.PowerDomain = 30
	RK3588USB     domain.PowerDomain = 31
	RK3588PHP     domain.PowerDomain = 32
	RK3588GMAC    domain.PowerDomain = 33
	RK3588PCIE    domain.PowerDomain = 34
	RK3588NVM     domain.PowerDomain = 35
	RK3588NVM0    domain.PowerDomain = 36
	RK3588SDIO    domain.PowerDomain = 37
	RK3588AUDIO   domain.PowerDomain = 38
	RK3588SDMMC   domain.PowerDomain = 40
)

// QoS port base addresses.
const (
	qos3588GPU    = 0xFDF35000
	qos3588NPU    = 0xFDF40000
	qos3588RKVDEC = 0xFDF48000
	qos3588RKVENC = 0xFDF50000
	qos3588VOP    = 0xFDF60000
	qos3588VI     = 0xFDF70000
	qos3588VCodec = 0xFDF78000
)

// RK3588 returns the rk3588 PMU table: the extended DOMAIN_M_O_R layout
// with memory-array power, repair status, and three dependency trees
// (NPUTOP over the NPU cores, VCODEC over the codec quartet, VI over
// ISP1, VOP over the video outputs).
func RK3588() *domain.PmuInfo {
	return &domain.PmuInfo{
		Name:               "rk3588",
		Base:               0xFD8D8000,
		PwrOffset:          0x14c,
		StatusOffset:       0x180,
		ReqOffset:          0x10c,
		IdleOffset:         0x120,
		AckOffset:          0x118,
		MemPwrOffset:       0x1a0,
		ChainStatusOffset:  0x1f0,
		MemStatusOffset:    0x1f8,
		RepairStatusOffset: 0x290,
		Domains: map[domain.PowerDomain]*domain.Descriptor{
			RK3588GPU: withQoS(
				domainMOR("gpu", 0x0, bit(0), 0, 0x0, 0, bit(1), 0x0, bit(0), bit(0), false),
				qos3588GPU, qos3588GPU+0x1000),
			RK3588NPU: withQoS(
				domainMOR("npu", 0x0, bit(1), bit(1), 0x0, 0, 0, 0x0, 0, 0, false),
				qos3588NPU, qos3588NPU+0x1000, qos3588NPU+0x2000, qos3588NPU+0x3000),
			RK3588VCodec: withQoS(
				withChildren(
					domainMOR("vcodec", 0x0, bit(2), bit(2), 0x0, 0, 0, 0x0, 0, 0, false),
					RK3588VENC0, RK3588VENC1, RK3588RKVDEC0, RK3588RKVDEC1),
				qos3588VCodec, qos3588VCodec+0x1000, qos3588VCodec+0x2000),
			RK3588NPUTOP: withChildren(
				domainMOR("nputop", 0x0, bit(3), 0, 0x0, bit(11), bit(2), 0x0, bit(1), bit(1), false),
				RK3588NPU1, RK3588NPU2),
			RK3588NPU1: withParent(
				domainMOR("npu1", 0x0, bit(4), 0, 0x0, bit(12), bit(3), 0x0, bit(2), bit(2), false),
				RK3588NPUTOP),
			RK3588NPU2: withParent(
				domainMOR("npu2", 0x0, bit(5), 0, 0x0, bit(13), bit(4), 0x0, bit(3), bit(3), false),
				RK3588NPUTOP),
			RK3588VENC0: withQoS(
				withParent(
					domainMOR("venc0", 0x0, bit(6), 0, 0x0, bit(14), bit(5), 0x0, bit(4), bit(4), false),
					RK3588VCodec),
				qos3588RKVENC, qos3588RKVENC+0x1000),
			RK3588VENC1: withParent(
				domainMOR("venc1", 0x0, bit(7), 0, 0x0, bit(15), bit(6), 0x0, bit(5), bit(5), false),
				RK3588VCodec),
			RK3588RKVDEC0: withQoS(
				withParent(
					domainMOR("rkvdec0", 0x0, bit(8), 0, 0x0, bit(16), bit(7), 0x0, bit(6), bit(6), false),
					RK3588VCodec),
				qos3588RKVDEC, qos3588RKVDEC+0x1000),
			RK3588RKVDEC1: withParent(
				domainMOR("rkvdec1", 0x0, bit(9), 0, 0x0, bit(17), bit(8), 0x0, bit(7), bit(7), false),
				RK3588VCodec),
			RK3588VDPU:  domainMOR("vdpu", 0x0, bit(10), 0, 0x0, bit(18), bit(9), 0x0, bit(8), bit(8), false),
			RK3588RGA30: domainMOR("rga30", 0x0, bit(11), 0, 0x0, bit(19), bit(10), 0x0, 0, 0, false),
			RK3588AV1:   domainMOR("av1", 0x0, bit(12), 0, 0x0, bit(20), bit(11), 0x0, bit(9), bit(9), false),
			RK3588VI: withQoS(
				withChildren(
					domainMOR("vi", 0x0, bit(13), 0, 0x0, bit(21), bit(12), 0x0, bit(10), bit(10), false),
					RK3588ISP1),
				qos3588VI, qos3588VI+0x1000),
			RK3588FEC: domainMOR("fec", 0x0, bit(14), 0, 0x0, bit(22), bit(13), 0x0, 0, 0, false),
			RK3588ISP1: withParent(
				domainMOR("isp1", 0x0, bit(15), 0, 0x0, bit(23), bit(14), 0x0, bit(11), bit(11), false),
				RK3588VI),
			RK3588RGA31: domainMOR("rga31", 0x4, bit(0), 0, 0x0, bit(24), bit(15), 0x0, bit(12), bit(12), false),
			RK3588VOP: withQoS(
				withChildren(
					domainMOR("vop", 0x4, bit(1), 0, 0x0, bit(25), bit(16), 0x0, bit(13)|bit(14), bit(13)|bit(14), false),
					RK3588VO0, RK3588VO1),
				qos3588VOP, qos3588VOP+0x1000, qos3588VOP+0x2000, qos3588VOP+0x3000),
			RK3588VO0: withParent(
				domainMOR("vo0", 0x4, bit(2), 0, 0x0, bit(26), bit(17), 0x0, bit(15), bit(15), false),
				RK3588VOP),
			RK3588VO1: withParent(
				domainMOR("vo1", 0x4, bit(3), 0, 0x0, bit(27), bit(18), 0x4, bit(0), bit(16), false),
				RK3588VOP),
			RK3588AUDIO: domainMOR("audio", 0x4, bit(4), 0, 0x0, bit(28), bit(19), 0x4, bit(1), bit(17), false),
			RK3588PHP:   domainMOR("php", 0x4, bit(5), 0, 0x0, bit(29), bit(20), 0x4, bit(5), bit(21), false),
			RK3588GMAC:  domainMOR("gmac", 0x4, bit(6), 0, 0x0, bit(30), bit(21), 0x0, 0, 0, false),
			RK3588PCIE:  domainMOR("pcie", 0x4, bit(7), 0, 0x0, bit(31), bit(22), 0x0, 0, 0, true),
			RK3588NVM:   domainMOR("nvm", 0x4, bit(8), bit(24), 0x4, 0, 0, 0x4, bit(2), bit(18), false),
			RK3588NVM0:  domainMOR("nvm0", 0x4, bit(9), 0, 0x4, bit(1), bit(23), 0x0, 0, 0, false),
			RK3588SDIO:  domainMOR("sdio", 0x4, bit(10), 0, 0x4, bit(2), bit(24), 0x4, bit(3), bit(19), false),
			RK3588USB:   domainMOR("usb", 0x4, bit(11), 0, 0x4, bit(3), bit(25), 0x4, bit(4), bit(20), true),
			RK3588SDMMC: domainMOR("sdmmc", 0x4, bit(13), 0, 0x4, bit(5), bit(26), 0x0, 0, 0, false),
		},
	}
}

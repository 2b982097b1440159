package variants

import "rkpm/internal/domain"

// RK3568 power domain identifiers.
const (
	RK3568NPU    domain.PowerDomain = 6
	RK3568GPU    domain.PowerDomain = 7
	RK3568VI     domain.PowerDomain = 8
	RK3568VO     domain.PowerDomain = 9
	RK3568RGA    domain.PowerDomain = 10
	RK3568VPU    domain.PowerDomain = 11
	RK3568RKVDEC domain.PowerDomain = 13
	RK3568RKVENC domain.PowerDomain = 14
	RK3568PIPE   domain.PowerDomain = 15
)

// QoS port base addresses.
const (
	qos3568GPU    = 0xFE128000
	qos3568NPU    = 0xFE138000
	qos3568VPU    = 0xFE148000
	qos3568RKVDEC = 0xFE158000
	qos3568RKVENC = 0xFE168000
)

// RK3568 returns the rk3568 PMU table: nine domains in the simple
// DOMAIN_M layout, with VPU the parent of the codec pair.
func RK3568() *domain.PmuInfo {
	return &domain.PmuInfo{
		Name:         "rk3568",
		Base:         0xFDD90000,
		PwrOffset:    0xa0,
		StatusOffset: 0x98,
		ReqOffset:    0x50,
		IdleOffset:   0x68,
		AckOffset:    0x60,
		Domains: map[domain.PowerDomain]*domain.Descriptor{
			RK3568GPU: withQoS(
				domainM("gpu", bit(0), bit(0), bit(1), bit(1), bit(1), false, false),
				qos3568GPU),
			RK3568NPU: withQoS(
				domainM("npu", bit(1), bit(1), bit(2), bit(2), bit(2), false, false),
				qos3568NPU),
			RK3568VPU: withQoS(
				withChildren(
					domainM("vpu", bit(2), bit(2), bit(6), bit(6), bit(6), false, false),
					RK3568RKVDEC, RK3568RKVENC),
				qos3568VPU, qos3568VPU+0x1000),
			RK3568VI:  domainM("vi", bit(6), bit(6), bit(3), bit(3), bit(3), false, false),
			RK3568VO:  domainM("vo", bit(7), bit(7), bit(4), bit(4), bit(4), false, true),
			RK3568RGA: domainM("rga", bit(5), bit(5), bit(5), bit(5), bit(5), false, false),
			RK3568RKVDEC: withQoS(
				withParent(
					domainM("rkvdec", bit(4), bit(4), bit(8), bit(8), bit(8), false, false),
					RK3568VPU),
				qos3568RKVDEC),
			RK3568RKVENC: withQoS(
				withParent(
					domainM("rkvenc", bit(3), bit(3), bit(7), bit(7), bit(7), false, false),
					RK3568VPU),
				qos3568RKVENC),
			RK3568PIPE: domainM("pipe", bit(8), bit(8), bit(11), bit(11), bit(11), false, false),
		},
	}
}

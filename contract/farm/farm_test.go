package farm_test

import (
	"github.com/meverselabs/yfacfarm/common"
	"github.com/meverselabs/yfacfarm/contract/farm"

	. "github.com/meverselabs/yfacfarm/extern/test/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Farm", func() {

	Describe("Config", func() {
		BeforeEach(func() {
			beforeEachToken()
		})
		AfterEach(func() {
			afterEach()
		})

		It("set max supply and halving supply", func() {
			tc.MustSendTx(Alice, yfac, "Mint", Alice, UnitsString("100000000000000000000000000"))
			Expect(tc.TotalSupply(yfac)).To(Equal("100000000000000000000000000"))

			engine = makeEngine(1000, 0, 1000)
			Expect(amountCall(engine, "MaxSupply")).To(Equal("1000000000000000000000000000"))
			Expect(amountCall(engine, "HalvingSupply")).To(Equal("500000000000000000000000000"))

			tc.MustSendTx(Alice, engine, "SetHalvingSupply", UnitsString("200000000000000000000000000"))
			Expect(amountCall(engine, "HalvingSupply")).To(Equal("200000000000000000000000000"))

			tc.MustSendTx(Alice, engine, "SetMaxSupply", UnitsString("500000000000000000000000000"))
			Expect(amountCall(engine, "MaxSupply")).To(Equal("500000000000000000000000000"))

			_, err := tc.SendTx(Bob, engine, "SetMaxSupply", Units(1))
			Expect(err).To(MatchError(farm.ErrNotOwner))
			_, err = tc.SendTx(Alice, engine, "SetHalvingSupply", Units(-1))
			Expect(err).To(MatchError(farm.ErrInvalidAmount))
		})

		It("should set correct state variables", func() {
			engine = makeEngine(1000, 0, 1000)
			handOver()

			Expect(tc.MustCall(engine, "FarmToken")[0]).To(Equal(yfac))
			Expect(tc.MustCall(engine, "DevAddr")[0]).To(Equal(Dev))
			Expect(tc.MustCall(engine, "Owner")[0]).To(Equal(Alice))
			Expect(tc.MustCall(yfac, "Owner")[0]).To(Equal(engine))

			cfg := tc.MustCall(engine, "Config")[0].(*farm.Config)
			Expect(cfg.RewardPerBlock.Int.Int64()).To(Equal(int64(1000)))
			Expect(cfg.StartBlock).To(Equal(uint32(0)))
			Expect(cfg.BonusEndBlock).To(Equal(uint32(1000)))
			Expect(cfg.BonusMultiplier).To(Equal(uint64(farm.BonusMultiplier)))
			Expect(cfg.PoolLength).To(Equal(uint64(0)))
		})

		It("should allow dev and only dev to update dev", func() {
			engine = makeEngine(1000, 0, 1000)
			Expect(tc.MustCall(engine, "DevAddr")[0]).To(Equal(Dev))

			_, err := tc.SendTx(Bob, engine, "Dev", Bob)
			Expect(err).To(MatchError(farm.ErrNotDev))
			Expect(err.Error()).To(ContainSubstring("dev: wut?"))

			tc.MustSendTx(Dev, engine, "Dev", Bob)
			Expect(tc.MustCall(engine, "DevAddr")[0]).To(Equal(Bob))
			tc.MustSendTx(Bob, engine, "Dev", Alice)
			Expect(tc.MustCall(engine, "DevAddr")[0]).To(Equal(Alice))
		})

		It("ownership of the engine", func() {
			engine = makeEngine(1000, 0, 1000)

			_, err := tc.SendTx(Bob, engine, "TransferOwnership", Bob)
			Expect(err).To(MatchError(farm.ErrNotOwner))
			_, err = tc.SendTx(Alice, engine, "TransferOwnership", common.ZeroAddr)
			Expect(err).To(MatchError(farm.ErrZeroOwner))

			tc.MustSendTx(Alice, engine, "TransferOwnership", Bob)
			Expect(tc.MustCall(engine, "Owner")[0]).To(Equal(Bob))
			_, err = tc.SendTx(Alice, engine, "Add", uint64(1), yfac, false)
			Expect(err).To(MatchError(farm.ErrNotOwner))
		})

		It("GetMultiplier counts the bonus window from start to end", func() {
			engine = makeEngine(100, 500, 600)
			multiplier := func(from, to uint32) uint64 {
				return tc.MustCall(engine, "GetMultiplier", from, to)[0].(uint64)
			}
			Expect(multiplier(400, 450)).To(Equal(uint64(50)))
			Expect(multiplier(480, 510)).To(Equal(uint64(20 + 10*10)))
			Expect(multiplier(500, 600)).To(Equal(uint64(1000)))
			Expect(multiplier(590, 605)).To(Equal(uint64(105)))
			Expect(multiplier(450, 650)).To(Equal(uint64(50 + 1000 + 50)))
			Expect(multiplier(600, 610)).To(Equal(uint64(10)))
			Expect(multiplier(599, 600)).To(Equal(uint64(10)))
			Expect(multiplier(610, 600)).To(Equal(uint64(0)))
		})
	})

	Describe("With LP tokens added to the field", func() {
		BeforeEach(func() {
			beforeEachLP()
		})
		AfterEach(func() {
			afterEach()
		})

		It("should allow emergency withdraw", func() {
			// 100 per block farming rate starting at block 100 with bonus until block 1000
			engine = makeEngine(100, 100, 1000)
			tc.MustSendTx(Alice, engine, "Add", uint64(100), lp, true)
			approve(lp, Bob, 1000)
			Expect(deposit(Bob, 0, 100)).To(Succeed())
			Expect(tc.BalanceOf(lp, Bob)).To(Equal("900"))

			_, err := tc.SendTx(Bob, engine, "EmergencyWithdraw", uint64(0))
			Expect(err).To(Succeed())
			Expect(tc.BalanceOf(lp, Bob)).To(Equal("1000"))
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("0"))

			user := tc.MustCall(engine, "UserInfo", uint64(0), Bob)[0].(*farm.UserInfo)
			Expect(user.Amount.IsZero()).To(BeTrue())
			Expect(user.RewardDebt.IsZero()).To(BeTrue())
			pool := tc.MustCall(engine, "PoolInfo", uint64(0))[0].(*farm.PoolInfo)
			Expect(pool.TotalStaked.IsZero()).To(BeTrue())

			rs, err := tc.Cn.Receipts(tc.Height())
			Expect(err).To(Succeed())
			Expect(rs).To(HaveLen(1))
			Expect(rs[0].Success).To(BeTrue())
			names := []string{}
			for _, e := range rs[0].Events {
				names = append(names, e.Name)
			}
			Expect(names).To(ContainElement("EmergencyWithdraw"))
		})

		It("should halve yield when reach halve point", func() {
			tc.MustSendTx(Alice, yfac, "Mint", Alice, UnitsString("500000000000000000000000000"))
			// 100 per block farming rate starting at block 100, the bonus window is empty
			engine = makeEngine(100, 100, 10)
			handOver()
			tc.MustSendTx(Alice, engine, "Add", uint64(100), lp, true)
			approve(lp, Bob, 1000)
			Expect(deposit(Bob, 0, 100)).To(Succeed())

			tc.AdvanceBlockTo(89)
			Expect(deposit(Bob, 0, 0)).To(Succeed()) // block 90
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("0"))
			tc.AdvanceBlockTo(94)
			Expect(deposit(Bob, 0, 0)).To(Succeed()) // block 95
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("0"))
			tc.AdvanceBlockTo(99)
			Expect(deposit(Bob, 0, 0)).To(Succeed()) // block 100
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("0"))
			tc.AdvanceBlockTo(100)
			Expect(deposit(Bob, 0, 0)).To(Succeed()) // block 101
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("0"))
			Expect(amountCall(engine, "RewardPerBlock")).To(Equal("50"))
			Expect(amountCall(engine, "HalvingSupply")).To(Equal("750000000000000000000000000"))

			tc.AdvanceBlockTo(104)
			Expect(deposit(Bob, 0, 0)).To(Succeed()) // block 105
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("200"))
			Expect(tc.BalanceOf(yfac, Dev)).To(Equal("20"))
			Expect(amountCall(engine, "RewardPerBlock")).To(Equal("50"))
		})

		It("should not distribute rewards if no one deposit", func() {
			// 100 per block farming rate starting at block 200 with bonus until block 1000
			engine = makeEngine(100, 200, 1000)
			handOver()
			tc.MustSendTx(Alice, engine, "Add", uint64(100), lp, true)
			approve(lp, Bob, 1000)

			tc.AdvanceBlockTo(199)
			Expect(tc.TotalSupply(yfac)).To(Equal("0"))
			tc.AdvanceBlockTo(204)
			Expect(tc.TotalSupply(yfac)).To(Equal("0"))
			tc.AdvanceBlockTo(209)
			Expect(deposit(Bob, 0, 10)).To(Succeed()) // block 210
			Expect(tc.TotalSupply(yfac)).To(Equal("0"))
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("0"))
			Expect(tc.BalanceOf(yfac, Dev)).To(Equal("0"))
			Expect(tc.BalanceOf(lp, Bob)).To(Equal("990"))

			tc.AdvanceBlockTo(219)
			Expect(withdraw(Bob, 0, 10)).To(Succeed()) // block 220
			Expect(tc.TotalSupply(yfac)).To(Equal("11000"))
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("10000"))
			Expect(tc.BalanceOf(yfac, Dev)).To(Equal("1000"))
			Expect(tc.BalanceOf(lp, Bob)).To(Equal("1000"))
		})

		It("should distribute rewards properly for each staker", func() {
			// 100 per block farming rate starting at block 300 with bonus until block 1000
			engine = makeEngine(100, 300, 1000)
			handOver()
			tc.MustSendTx(Alice, engine, "Add", uint64(100), lp, true)
			approve(lp, Alice, 1000)
			approve(lp, Bob, 1000)
			approve(lp, Carol, 1000)

			// Alice deposits 10 LPs at block 310
			tc.AdvanceBlockTo(309)
			Expect(deposit(Alice, 0, 10)).To(Succeed())
			// Bob deposits 20 LPs at block 314
			tc.AdvanceBlockTo(313)
			Expect(deposit(Bob, 0, 20)).To(Succeed())
			// Carol deposits 30 LPs at block 318
			tc.AdvanceBlockTo(317)
			Expect(deposit(Carol, 0, 30)).To(Succeed())
			// Alice deposits 10 more LPs at block 320. At this point:
			//   Alice should have: 4*1000 + 4*1/3*1000 + 2*1/6*1000 = 5666
			//   the engine should have the remaining: 10000 - 5666 = 4334
			tc.AdvanceBlockTo(319)
			Expect(deposit(Alice, 0, 10)).To(Succeed())
			Expect(tc.TotalSupply(yfac)).To(Equal("11000"))
			Expect(tc.BalanceOf(yfac, Alice)).To(Equal("5666"))
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("0"))
			Expect(tc.BalanceOf(yfac, Carol)).To(Equal("0"))
			Expect(tc.BalanceOf(yfac, engine)).To(Equal("4334"))
			Expect(tc.BalanceOf(yfac, Dev)).To(Equal("1000"))

			// Bob withdraws 5 LPs at block 330. At this point:
			//   Bob should have: 4*2/3*1000 + 2*2/6*1000 + 10*2/7*1000 = 6190
			tc.AdvanceBlockTo(329)
			Expect(withdraw(Bob, 0, 5)).To(Succeed())
			Expect(tc.TotalSupply(yfac)).To(Equal("22000"))
			Expect(tc.BalanceOf(yfac, Alice)).To(Equal("5666"))
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("6190"))
			Expect(tc.BalanceOf(yfac, Carol)).To(Equal("0"))
			Expect(tc.BalanceOf(yfac, engine)).To(Equal("8144"))
			Expect(tc.BalanceOf(yfac, Dev)).To(Equal("2000"))

			// Alice withdraws 20 LPs at block 340.
			// Bob withdraws 15 LPs at block 350.
			// Carol withdraws 30 LPs at block 360.
			tc.AdvanceBlockTo(339)
			Expect(withdraw(Alice, 0, 20)).To(Succeed())
			tc.AdvanceBlockTo(349)
			Expect(withdraw(Bob, 0, 15)).To(Succeed())
			tc.AdvanceBlockTo(359)
			Expect(withdraw(Carol, 0, 30)).To(Succeed())
			Expect(tc.TotalSupply(yfac)).To(Equal("55000"))
			Expect(tc.BalanceOf(yfac, Dev)).To(Equal("5000"))
			// Alice should have: 5666 + 10*2/7*1000 + 10*2/6.5*1000 = 11600
			Expect(tc.BalanceOf(yfac, Alice)).To(Equal("11600"))
			// Bob should have: 6190 + 10*1.5/6.5 * 1000 + 10*1.5/4.5*1000 = 11831
			Expect(tc.BalanceOf(yfac, Bob)).To(Equal("11831"))
			// Carol should have: 2*3/6*1000 + 10*3/7*1000 + 10*3/6.5*1000 + 10*3/4.5*1000 + 10*1000 = 26568
			Expect(tc.BalanceOf(yfac, Carol)).To(Equal("26568"))
			// All of them should have 1000 LPs back.
			Expect(tc.BalanceOf(lp, Alice)).To(Equal("1000"))
			Expect(tc.BalanceOf(lp, Bob)).To(Equal("1000"))
			Expect(tc.BalanceOf(lp, Carol)).To(Equal("1000"))
		})

		It("should give proper allocation to each pool", func() {
			// 100 per block farming rate starting at block 400 with bonus until block 1000
			engine = makeEngine(100, 400, 1000)
			handOver()
			approve(lp, Alice, 1000)
			approve(lp2, Bob, 1000)
			// Add first LP to the pool with allocation 1
			tc.MustSendTx(Alice, engine, "Add", uint64(10), lp, true)
			// Alice deposits 10 LPs at block 410
			tc.AdvanceBlockTo(409)
			Expect(deposit(Alice, 0, 10)).To(Succeed())
			// Add LP2 to the pool with allocation 2 at block 420
			tc.AdvanceBlockTo(419)
			is := tc.MustSendTx(Alice, engine, "Add", uint64(20), lp2, true)
			Expect(is[0]).To(Equal(uint64(1)))
			Expect(tc.MustCall(engine, "TotalAllocPoint")[0]).To(Equal(uint64(30)))
			Expect(tc.MustCall(engine, "PoolLength")[0]).To(Equal(uint64(2)))
			// Alice should have 10*1000 pending reward
			Expect(pendingReward(0, Alice)).To(Equal("10000"))

			// the settled accumulator of the first pool is not touched by the new pool
			pool0 := tc.MustCall(engine, "PoolInfo", uint64(0))[0].(*farm.PoolInfo)
			Expect(pool0.AccRewardPerShare.String()).To(Equal("1000000000000000"))
			Expect(pool0.LastRewardBlock).To(Equal(uint32(420)))

			// Bob deposits 5 LP2s at block 425
			tc.AdvanceBlockTo(424)
			Expect(deposit(Bob, 1, 5)).To(Succeed())
			// Alice should have 10000 + 5*1/3*1000 = 11666 pending reward
			Expect(pendingReward(0, Alice)).To(Equal("11666"))
			tc.AdvanceBlockTo(430)
			// At block 430. Bob should get 5*2/3*1000 = 3333. Alice should get ~1666 more.
			Expect(pendingReward(0, Alice)).To(Equal("13333"))
			Expect(pendingReward(1, Bob)).To(Equal("3333"))
		})

		It("should stop giving bonus rewards after the bonus period ends", func() {
			// 100 per block farming rate starting at block 500 with bonus until block 600
			engine = makeEngine(100, 500, 600)
			handOver()
			approve(lp, Alice, 1000)
			tc.MustSendTx(Alice, engine, "Add", uint64(1), lp, true)
			// Alice deposits 10 LPs at block 590
			tc.AdvanceBlockTo(589)
			Expect(deposit(Alice, 0, 10)).To(Succeed())
			// At block 605, she should have 1000*10 + 100*5 = 10500 pending.
			tc.AdvanceBlockTo(605)
			Expect(pendingReward(0, Alice)).To(Equal("10500"))
			// At block 606, Alice withdraws all pending rewards and should get 10600.
			Expect(deposit(Alice, 0, 0)).To(Succeed())
			Expect(pendingReward(0, Alice)).To(Equal("0"))
			Expect(tc.BalanceOf(yfac, Alice)).To(Equal("10600"))
			Expect(tc.BalanceOf(yfac, Dev)).To(Equal("1060"))
		})

		It("pending reward of a height plus one block of emission is credited by the claim at the next height", func() {
			engine = makeEngine(100, 500, 600)
			handOver()
			approve(lp, Alice, 1000)
			tc.MustSendTx(Alice, engine, "Add", uint64(1), lp, true)
			tc.AdvanceBlockTo(589)
			Expect(deposit(Alice, 0, 10)).To(Succeed())

			for _, h := range []uint32{598, 605} {
				tc.AdvanceBlockTo(h)
				before := UnitsString(tc.BalanceOf(yfac, Alice))
				mul := tc.MustCall(engine, "GetMultiplier", h, h+1)[0].(uint64)
				expected := UnitsString(pendingReward(0, Alice)).Add(Units(100).MulC(int64(mul)))

				Expect(deposit(Alice, 0, 0)).To(Succeed())
				Expect(tc.Height()).To(Equal(h + 1))
				credited := UnitsString(tc.BalanceOf(yfac, Alice)).Sub(before)
				Expect(credited.Int.String()).To(Equal(expected.Int.String()))
			}
			// 590..599 in bonus: 9000, 599..606: 1000 + 600 = 1600
			Expect(tc.BalanceOf(yfac, Alice)).To(Equal("10600"))
		})

		Describe("Supply cap", func() {
			BeforeEach(func() {
				engine = makeEngine(100, 0, 0)
				handOver()
				approve(lp, Alice, 1000)
				tc.MustSendTx(Alice, engine, "Add", uint64(1), lp, false)
			})

			It("clamps both mints in proportion to the headroom", func() {
				tc.MustSendTx(Alice, engine, "SetMaxSupply", Units(330))
				Expect(deposit(Alice, 0, 10)).To(Succeed())
				h := tc.Height()

				tc.AdvanceBlockTo(h + 4)
				Expect(deposit(Alice, 0, 0)).To(Succeed())
				// 500 + 50 requested against a headroom of 330
				Expect(tc.TotalSupply(yfac)).To(Equal("330"))
				Expect(tc.BalanceOf(yfac, Alice)).To(Equal("300"))
				Expect(tc.BalanceOf(yfac, Dev)).To(Equal("30"))

				tc.AdvanceBlockTo(h + 10)
				Expect(pendingReward(0, Alice)).To(Equal("0"))
				Expect(deposit(Alice, 0, 0)).To(Succeed())
				Expect(tc.TotalSupply(yfac)).To(Equal("330"))
				Expect(tc.BalanceOf(yfac, Alice)).To(Equal("300"))
			})

			It("mints nothing when the supply is already over the cap", func() {
				tc.MustSendTx(Alice, engine, "SetMaxSupply", Units(0))
				Expect(deposit(Alice, 0, 10)).To(Succeed())
				tc.AdvanceBlockTo(tc.Height() + 20)
				Expect(withdraw(Alice, 0, 10)).To(Succeed())
				Expect(tc.TotalSupply(yfac)).To(Equal("0"))
				Expect(tc.BalanceOf(lp, Alice)).To(Equal("1000"))
			})
		})

		Describe("Pools", func() {
			BeforeEach(func() {
				engine = makeEngine(100, 0, 0)
				handOver()
				approve(lp, Alice, 1000)
				approve(lp2, Bob, 1000)
			})

			It("rejects unknown pools and bad amounts", func() {
				_, err := tc.Call(engine, "PoolInfo", uint64(0))
				Expect(err).To(MatchError(farm.ErrInvalidPool))
				Expect(deposit(Alice, 0, 10)).To(MatchError(farm.ErrInvalidPool))
				Expect(withdraw(Alice, 0, 0)).To(MatchError(farm.ErrInvalidPool))
				_, err = tc.SendTx(Alice, engine, "UpdatePool", uint64(3))
				Expect(err).To(MatchError(farm.ErrInvalidPool))

				tc.MustSendTx(Alice, engine, "Add", uint64(1), lp, false)
				Expect(deposit(Alice, 0, -1)).To(MatchError(farm.ErrInvalidAmount))
				Expect(deposit(Alice, 0, 10)).To(Succeed())
				Expect(withdraw(Alice, 0, 11)).To(MatchError(farm.ErrWithdrawNotGood))
				Expect(tc.BalanceOf(lp, Alice)).To(Equal("990"))
				Expect(deposit(Alice, 0, 2000)).To(HaveOccurred())
				Expect(tc.BalanceOf(lp, Alice)).To(Equal("990"))
			})

			It("Set re-weights a pool after settling", func() {
				tc.MustSendTx(Alice, engine, "Add", uint64(1), lp, false)
				tc.MustSendTx(Alice, engine, "Add", uint64(1), lp2, false)
				Expect(deposit(Alice, 0, 10)).To(Succeed())
				Expect(deposit(Bob, 1, 10)).To(Succeed())
				h := tc.Height()

				tc.AdvanceBlockTo(h + 9)
				// block h+10, both pools earned 50 per block so far
				tc.MustSendTx(Alice, engine, "Set", uint64(1), uint64(3), true)
				Expect(tc.MustCall(engine, "TotalAllocPoint")[0]).To(Equal(uint64(4)))
				Expect(pendingReward(1, Bob)).To(Equal("500"))

				tc.AdvanceBlockTo(h + 14)
				// pool 1 earns 75 per block after the change
				Expect(pendingReward(1, Bob)).To(Equal("800"))

				_, err := tc.SendTx(Bob, engine, "Set", uint64(1), uint64(1), true)
				Expect(err).To(MatchError(farm.ErrNotOwner))
			})

			It("UpdatePool before the start block changes nothing", func() {
				// nothing is minted before the start, the token stays with the first engine
				engine = makeEngine(100, 1000, 1000)
				approve(lp, Alice, 1000)
				tc.MustSendTx(Alice, engine, "Add", uint64(1), lp, true)
				Expect(deposit(Alice, 0, 10)).To(Succeed())

				before := tc.MustCall(engine, "PoolInfo", uint64(0))[0].(*farm.PoolInfo)
				tc.MustSendTx(Bob, engine, "UpdatePool", uint64(0))
				tc.MustSendTx(Bob, engine, "MassUpdatePools")
				after := tc.MustCall(engine, "PoolInfo", uint64(0))[0].(*farm.PoolInfo)
				Expect(after.LastRewardBlock).To(Equal(uint32(1000)))
				Expect(after.AccRewardPerShare.Sign()).To(Equal(0))
				Expect(after.TotalStaked.Int.String()).To(Equal(before.TotalStaked.Int.String()))
				Expect(tc.TotalSupply(yfac)).To(Equal("0"))
			})

			It("settles a pool once per height", func() {
				tc.MustSendTx(Alice, engine, "Add", uint64(1), lp, false)
				Expect(deposit(Alice, 0, 10)).To(Succeed())
				h := tc.Height()
				tc.AdvanceBlockTo(h + 9)
				tc.MustSendTx(Bob, engine, "UpdatePool", uint64(0))
				Expect(tc.TotalSupply(yfac)).To(Equal("1100"))

				// a claim at the next height only adds one block
				Expect(deposit(Alice, 0, 0)).To(Succeed())
				Expect(tc.TotalSupply(yfac)).To(Equal("1210"))
				Expect(tc.BalanceOf(yfac, Alice)).To(Equal("1100"))
			})

			It("SetRewardPerBlock applies from the next block", func() {
				tc.MustSendTx(Alice, engine, "Add", uint64(1), lp, false)
				Expect(deposit(Alice, 0, 10)).To(Succeed())
				h := tc.Height()
				tc.AdvanceBlockTo(h + 4)
				tc.MustSendTx(Alice, engine, "SetRewardPerBlock", Units(10))
				Expect(pendingReward(0, Alice)).To(Equal("500"))
				tc.AdvanceBlockTo(h + 10)
				Expect(pendingReward(0, Alice)).To(Equal("550"))
			})
		})
	})

	Describe("Reentrancy", func() {
		BeforeEach(func() {
			beforeEachLP()
			engine = makeEngine(100, 0, 0)
			handOver()
		})
		AfterEach(func() {
			afterEach()
		})

		It("a want token calling back into the engine is rejected", func() {
			evil := deployReentrantToken(engine)
			tc.MustSendTx(Alice, engine, "Add", uint64(1), evil, false)

			_, err := tc.SendTx(Bob, engine, "Deposit", uint64(0), Units(10))
			Expect(err).To(MatchError(farm.ErrReentrantCall))

			user := tc.MustCall(engine, "UserInfo", uint64(0), Bob)[0].(*farm.UserInfo)
			Expect(user.Amount.IsZero()).To(BeTrue())

			// the lock is not left behind by the failed transaction
			tc.MustSendTx(Alice, engine, "Add", uint64(1), lp, false)
			approve(lp, Bob, 1000)
			Expect(deposit(Bob, 1, 10)).To(Succeed())
			Expect(withdraw(Bob, 1, 10)).To(Succeed())
			Expect(tc.BalanceOf(lp, Bob)).To(Equal("1000"))
		})
	})
})

// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/rps/account"
	"github.com/33cn/rps/common"
	dbm "github.com/33cn/rps/common/db"
	rpstypes "github.com/33cn/rps/plugin/dapp/rps/types"
	drivers "github.com/33cn/rps/system/dapp"
	"github.com/33cn/rps/types"
)

//Action 一笔 rps 交易的执行环境. now 为区块高度, stake 为交易金额(已经转入托管账户)
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	stake        int64
	height       int64
	index        int
	execaddr     string
	conf         subConfig
}

//NewAction new
func NewAction(r *Rps, tx *types.Transaction, index int) *Action {
	return &Action{
		coinsAccount: r.GetCoinsAccount(),
		db:           r.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		stake:        tx.Amount,
		height:       r.GetHeight(),
		index:        index,
		execaddr:     r.GetExecAddress(),
		conf:         r.conf,
	}
}

//GetIndex height*MaxTxsPerBlock+index
func (action *Action) GetIndex() int64 {
	return action.height*types.MaxTxsPerBlock + int64(action.index)
}

func (action *Action) receipt(kv []*types.KeyValue, ty int32, log types.Message) *types.Receipt {
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{{Ty: ty, Log: types.Encode(log)}},
	}
}

func (action *Action) checkNotPayable(name string) error {
	if action.stake != 0 {
		glog.Error(name, "addr", action.fromaddr, "amount", action.stake, "err", rpstypes.ErrNotPayable)
		return rpstypes.ErrNotPayable
	}
	return nil
}

//执行器的托管地址不能参与游戏
func (action *Action) checkPlayer(name string) error {
	if drivers.IsDriverAddress(action.fromaddr) {
		glog.Error(name, "addr", action.fromaddr, "err", rpstypes.ErrPermissionDenied)
		return rpstypes.ErrPermissionDenied
	}
	return nil
}

//CreateGameRoom 用承诺创建一局游戏, 赌注进入奖池
func (action *Action) CreateGameRoom(create *rpstypes.RpsCreate) (*types.Receipt, error) {
	if action.stake < 0 {
		return nil, rpstypes.ErrInvalidStake
	}
	if err := action.checkPlayer("CreateGameRoom"); err != nil {
		return nil, err
	}
	_, err := readSession(action.db, create.ID)
	if err == nil {
		glog.Error("CreateGameRoom", "addr", action.fromaddr, "id", create.ID, "err", rpstypes.ErrDuplicateCommitment)
		return nil, rpstypes.ErrDuplicateCommitment
	}
	if err != rpstypes.ErrRoomNotFound {
		glog.Error("CreateGameRoom", "addr", action.fromaddr, "id", create.ID, "err", err)
		return nil, err
	}
	if create.TimeoutDelta < action.conf.MinTimeoutDelta || create.TimeoutDelta > action.conf.MaxTimeoutDelta {
		glog.Error("CreateGameRoom", "addr", action.fromaddr, "id", create.ID, "timeoutDelta", create.TimeoutDelta,
			"err", rpstypes.ErrInvalidTimeout)
		return nil, rpstypes.ErrInvalidTimeout
	}
	s := &rpstypes.Session{
		ID:        create.ID,
		PlayerA:   action.fromaddr,
		Pot:       action.stake,
		CreatedAt: action.height,
		TimeoutAt: action.height + create.TimeoutDelta,
		Status:    rpstypes.StatusCreated,
		Index:     action.GetIndex(),
	}
	kv := saveSession(action.db, s)
	log := &rpstypes.LogCreateGameRoom{
		ID:        s.ID,
		PlayerA:   s.PlayerA,
		CreatedAt: s.CreatedAt,
		TimeoutAt: s.TimeoutAt,
		Pot:       s.Pot,
		Index:     s.Index,
	}
	glog.Debug("CreateGameRoom", "addr", action.fromaddr, "id", s.ID, "pot", s.Pot, "timeoutAt", s.TimeoutAt)
	markAction("Create")
	return action.receipt([]*types.KeyValue{kv}, rpstypes.TyLogCreateGameRoom, log), nil
}

//JoinGameRoom 明文出拳加入, 必须在 timeoutAt 之前
func (action *Action) JoinGameRoom(join *rpstypes.RpsJoin) (*types.Receipt, error) {
	if action.stake < 0 {
		return nil, rpstypes.ErrInvalidStake
	}
	if err := action.checkPlayer("JoinGameRoom"); err != nil {
		return nil, err
	}
	s, err := readSession(action.db, join.ID)
	if err != nil {
		glog.Error("JoinGameRoom", "addr", action.fromaddr, "id", join.ID, "err", err)
		return nil, err
	}
	if s.Status >= rpstypes.StatusJoined {
		glog.Error("JoinGameRoom", "addr", action.fromaddr, "id", join.ID, "status", s.Status, "err", rpstypes.ErrRoomAlreadyStarted)
		return nil, rpstypes.ErrRoomAlreadyStarted
	}
	if action.height >= s.TimeoutAt {
		glog.Error("JoinGameRoom", "addr", action.fromaddr, "id", join.ID, "height", action.height, "timeoutAt", s.TimeoutAt,
			"err", rpstypes.ErrRoomExpired)
		return nil, rpstypes.ErrRoomExpired
	}
	if !join.Move.IsConcrete() {
		glog.Error("JoinGameRoom", "addr", action.fromaddr, "id", join.ID, "move", join.Move, "err", rpstypes.ErrInvalidMove)
		return nil, rpstypes.ErrInvalidMove
	}
	if s.PlayerA == action.fromaddr {
		glog.Error("JoinGameRoom", "addr", action.fromaddr, "id", join.ID, "err", rpstypes.ErrJoinOwnRoom)
		return nil, rpstypes.ErrJoinOwnRoom
	}
	s.PlayerB = action.fromaddr
	s.PlayerBMove = join.Move
	s.Pot += action.stake
	s.Status = rpstypes.StatusJoined
	s.PrevIndex = s.Index
	s.Index = action.GetIndex()
	kv := saveSession(action.db, s)
	log := &rpstypes.LogJoinGameRoom{
		ID:          s.ID,
		PlayerA:     s.PlayerA,
		PlayerB:     s.PlayerB,
		PlayerBMove: s.PlayerBMove,
		Pot:         s.Pot,
		Index:       s.Index,
		PrevIndex:   s.PrevIndex,
	}
	glog.Debug("JoinGameRoom", "addr", action.fromaddr, "id", s.ID, "move", s.PlayerBMove, "pot", s.Pot)
	markAction("Join")
	return action.receipt([]*types.KeyValue{kv}, rpstypes.TyLogJoinGameRoom, log), nil
}

//RevealGame 创建者公开出拳, 承诺必须一致. 超时以后, 只要还没有被强制开奖也可以公开
func (action *Action) RevealGame(reveal *rpstypes.RpsReveal) (*types.Receipt, error) {
	if err := action.checkNotPayable("RevealGame"); err != nil {
		return nil, err
	}
	s, err := action.readJoined("RevealGame", reveal.ID)
	if err != nil {
		return nil, err
	}
	if s.PlayerA != action.fromaddr {
		glog.Error("RevealGame", "addr", action.fromaddr, "id", reveal.ID, "err", rpstypes.ErrPermissionDenied)
		return nil, rpstypes.ErrPermissionDenied
	}
	if !reveal.Move.IsConcrete() {
		glog.Error("RevealGame", "addr", action.fromaddr, "id", reveal.ID, "move", reveal.Move, "err", rpstypes.ErrInvalidMove)
		return nil, rpstypes.ErrInvalidMove
	}
	if rpstypes.CalcCommitment(reveal.Move, reveal.Secret, action.fromaddr) != s.ID {
		glog.Error("RevealGame", "addr", action.fromaddr, "id", reveal.ID, "err", rpstypes.ErrCommitmentMismatch)
		return nil, rpstypes.ErrCommitmentMismatch
	}
	s.PlayerAMove = reveal.Move
	return action.resolve(s, false)
}

//RevealGameForce 创建者超时没有公开, 加入者强制开奖, 创建者判负
func (action *Action) RevealGameForce(force *rpstypes.RpsRevealForce) (*types.Receipt, error) {
	if err := action.checkNotPayable("RevealGameForce"); err != nil {
		return nil, err
	}
	s, err := action.readJoined("RevealGameForce", force.ID)
	if err != nil {
		return nil, err
	}
	if s.PlayerB != action.fromaddr {
		glog.Error("RevealGameForce", "addr", action.fromaddr, "id", force.ID, "err", rpstypes.ErrPermissionDenied)
		return nil, rpstypes.ErrPermissionDenied
	}
	if action.height < s.TimeoutAt {
		glog.Error("RevealGameForce", "addr", action.fromaddr, "id", force.ID, "height", action.height, "timeoutAt", s.TimeoutAt,
			"err", rpstypes.ErrNotExpiredYet)
		return nil, rpstypes.ErrNotExpiredYet
	}
	s.PlayerAMove = rpstypes.MoveNone
	return action.resolve(s, true)
}

func (action *Action) readJoined(name string, id rpstypes.CommitmentID) (*rpstypes.Session, error) {
	s, err := readSession(action.db, id)
	if err != nil {
		glog.Error(name, "addr", action.fromaddr, "id", id, "err", err)
		return nil, err
	}
	if s.Status != rpstypes.StatusJoined {
		glog.Error(name, "addr", action.fromaddr, "id", id, "status", s.Status, "err", rpstypes.ErrWrongState)
		return nil, rpstypes.ErrWrongState
	}
	return s, nil
}

func (action *Action) resolve(s *rpstypes.Session, forced bool) (*types.Receipt, error) {
	s.Winner = winnerOf(s)
	s.Forced = forced
	s.Status = rpstypes.StatusRevealed
	s.PrevIndex = s.Index
	s.Index = action.GetIndex()
	kv := saveSession(action.db, s)
	log := &rpstypes.LogRevealGame{
		ID:          s.ID,
		PlayerA:     s.PlayerA,
		PlayerB:     s.PlayerB,
		Pot:         s.Pot,
		PlayerAMove: s.PlayerAMove,
		PlayerBMove: s.PlayerBMove,
		Winner:      s.Winner,
		IsOver:      true,
		Forced:      forced,
		Index:       s.Index,
		PrevIndex:   s.PrevIndex,
	}
	glog.Debug("RevealGame", "addr", action.fromaddr, "id", s.ID, "winner", s.Winner, "forced", forced)
	if forced {
		markAction("RevealForce")
	} else {
		markAction("Reveal")
	}
	return action.receipt([]*types.KeyValue{kv}, rpstypes.TyLogRevealGame, log), nil
}

//RewardGame 把奖池记入结算账本, 任何人都可以调用. 平局各得一半, 余数留在托管账户
func (action *Action) RewardGame(reward *rpstypes.RpsReward) (*types.Receipt, error) {
	if err := action.checkNotPayable("RewardGame"); err != nil {
		return nil, err
	}
	s, err := readSession(action.db, reward.ID)
	if err != nil {
		glog.Error("RewardGame", "addr", action.fromaddr, "id", reward.ID, "err", err)
		return nil, err
	}
	if s.Status == rpstypes.StatusSettled {
		glog.Error("RewardGame", "addr", action.fromaddr, "id", reward.ID, "err", rpstypes.ErrAlreadySettled)
		return nil, rpstypes.ErrAlreadySettled
	}
	if s.Status != rpstypes.StatusRevealed {
		glog.Error("RewardGame", "addr", action.fromaddr, "id", reward.ID, "status", s.Status, "err", rpstypes.ErrWrongState)
		return nil, rpstypes.ErrWrongState
	}
	ledger := NewLedger(action.db)
	pot := s.Pot
	switch s.Winner {
	case "":
		half := pot / 2
		ledger.Credit(s.PlayerA, half)
		ledger.Credit(s.PlayerB, half)
	default:
		ledger.Credit(s.Winner, pot)
	}
	s.Pot = 0
	s.Status = rpstypes.StatusSettled
	s.PrevIndex = s.Index
	s.Index = action.GetIndex()
	kv := append(ledger.KV(), saveSession(action.db, s))
	log := &rpstypes.LogRewardGame{
		ID:             s.ID,
		PlayerA:        s.PlayerA,
		PlayerB:        s.PlayerB,
		Pot:            pot,
		Winner:         s.Winner,
		PlayerABalance: ledger.Balance(s.PlayerA),
		PlayerBBalance: ledger.Balance(s.PlayerB),
		IsReward:       true,
		Index:          s.Index,
		PrevIndex:      s.PrevIndex,
	}
	glog.Debug("RewardGame", "addr", action.fromaddr, "id", s.ID, "pot", pot, "winner", s.Winner)
	markAction("Reward")
	return action.receipt(kv, rpstypes.TyLogRewardGame, log), nil
}

//Withdraw 提取结算账本中的全部余额
func (action *Action) Withdraw(withdraw *rpstypes.RpsWithdraw) (*types.Receipt, error) {
	if err := action.checkNotPayable("Withdraw"); err != nil {
		return nil, err
	}
	ledger := NewLedger(action.db)
	var transfer *types.Receipt
	amount, err := ledger.Withdraw(action.fromaddr, func(addr string, amount int64) error {
		var err error
		transfer, err = action.coinsAccount.Transfer(action.execaddr, addr, amount)
		return err
	})
	if err != nil {
		glog.Error("Withdraw", "addr", action.fromaddr, "execaddr", action.execaddr, "err", err)
		return nil, err
	}
	log := &rpstypes.LogWithdraw{Player: action.fromaddr, Amount: amount}
	receipt := action.receipt(append(ledger.KV(), transfer.KV...), rpstypes.TyLogWithdraw, log)
	receipt.Logs = append(receipt.Logs, transfer.Logs...)
	glog.Debug("Withdraw", "addr", action.fromaddr, "amount", amount, "tx", common.ToHex(action.txhash))
	markAction("Withdraw")
	return receipt, nil
}

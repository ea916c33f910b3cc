package playlist

// BucketCount - число корзин индекса
const BucketCount = 100

// Checksum вычисляет номер корзины: сумма байтов названия по модулю BucketCount
func Checksum(title string) int {
	sum := 0
	for i := 0; i < len(title); i++ {
		sum = (sum + int(title[i])) % BucketCount
	}
	return sum
}

// Index отображает название трека на ссылку в последовательности.
// Корзина хранит одну ссылку: при коллизии более поздняя запись
// вытесняет раннюю, цепочек нет.
type Index struct {
	buckets  [BucketCount]Handle
	occupied [BucketCount]bool
}

// NewIndex создает пустой индекс
func NewIndex() *Index {
	return &Index{}
}

// Put записывает ссылку в корзину названия, безусловно перезаписывая ее
func (ix *Index) Put(title string, h Handle) {
	b := Checksum(title)
	ix.buckets[b] = h
	ix.occupied[b] = true
}

// Get возвращает то, что лежит в корзине названия. Это может быть
// другой трек с той же контрольной суммой или уже удаленный трек.
func (ix *Index) Get(title string) (Handle, bool) {
	b := Checksum(title)
	if !ix.occupied[b] {
		return Handle{}, false
	}
	return ix.buckets[b], true
}

// Delete очищает корзину названия, только если в ней все еще лежит h
func (ix *Index) Delete(title string, h Handle) bool {
	b := Checksum(title)
	if !ix.occupied[b] || ix.buckets[b] != h {
		return false
	}
	ix.buckets[b] = Handle{}
	ix.occupied[b] = false
	return true
}

// Reset очищает все корзины
func (ix *Index) Reset() {
	*ix = Index{}
}

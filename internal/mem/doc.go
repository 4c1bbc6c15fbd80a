// Package mem provides alignment arithmetic and aligned buffer allocation.
//
// # Aligned Allocation
//
// Two allocators hand out byte slices whose first element sits on a
// power-of-two boundary:
//
//   - HeapAllocator over-allocates a Go slice and re-slices it to the first
//     aligned offset (GC managed, Free only returns the budget).
//   - OffHeapAllocator maps anonymous pages (page aligned, outside the GC heap)
//     and unmaps them on Free.
//
// Returned buffers have len == size and cap == AlignUp(size, alignment), so
// copy kernels that round the size up to their block width never leave the
// allocation.
package mem
